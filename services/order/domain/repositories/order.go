package repositories

import (
	"context"

	"github.com/logitrack/logitrack/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
type OrderRepository interface {
	// ResolveItems returns the inventory items among ids that exist, keyed
	// by id. Unknown ids are absent from the map; they are not an error.
	ResolveItems(ctx context.Context, ids []int) (map[int]models.ItemRef, error)

	// Create stores order and all its lines in one transaction and sets the
	// generated ids. Either everything is stored or nothing is.
	Create(ctx context.Context, order *models.Order, placedBy string, droppedIDs []int) error

	// List returns every order with its lines, orders by id and lines in
	// insertion order.
	List(ctx context.Context) ([]*models.Order, error)

	// GetByID returns one order with its lines, or ErrOrderNotFound.
	GetByID(ctx context.Context, id int) (*models.Order, error)

	// Delete removes an order and its lines, or returns ErrOrderNotFound.
	Delete(ctx context.Context, id int, deletedBy string) error
}

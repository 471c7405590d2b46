package repositories

import (
	"context"

	"github.com/logitrack/logitrack/services/inventory/domain/models"
)

// InventoryRepository is the persistence interface for InventoryItem.
// The domain layer owns this interface; infrastructure implements it.
type InventoryRepository interface {
	// List returns every item in insertion order.
	List(ctx context.Context) ([]*models.InventoryItem, error)

	// Save inserts item and sets its generated ID. createdBy is recorded on
	// the published event.
	Save(ctx context.Context, item *models.InventoryItem, createdBy string) error

	// Delete removes the item and, through the storage cascade, every order
	// line referencing it. It returns the ids of orders that lost lines, or
	// ErrItemNotFound when no such item exists.
	Delete(ctx context.Context, id int, deletedBy string) (affectedOrderIDs []int, err error)
}

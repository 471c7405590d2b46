package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/events"
	inventorydomain "github.com/logitrack/logitrack/services/inventory/domain"
	domainevents "github.com/logitrack/logitrack/services/inventory/domain/events"
	"github.com/logitrack/logitrack/services/inventory/domain/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// InventoryRepository implements repositories.InventoryRepository against PostgreSQL.
type InventoryRepository struct {
	db  *database.Database
	bus events.TxPublisher
	now func() time.Time
}

// NewInventoryRepository returns an InventoryRepository. bus may be nil, in
// which case no events are published.
func NewInventoryRepository(db *database.Database, bus events.TxPublisher) *InventoryRepository {
	return &InventoryRepository{db: db, bus: bus, now: time.Now}
}

// List returns all items ordered by id, which is insertion order.
func (r *InventoryRepository) List(ctx context.Context) ([]*models.InventoryItem, error) {
	query, args, err := psql.
		Select("id", "name", "quantity", "location").
		From("inventory_items").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence("query inventory items", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]*models.InventoryItem, 0)
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.Location); err != nil {
			return nil, apperr.Persistence("scan inventory item", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate inventory items", err)
	}
	return items, nil
}

// Save inserts item, sets its ID and publishes ItemCreatedEvent in the same
// transaction.
func (r *InventoryRepository) Save(ctx context.Context, item *models.InventoryItem, createdBy string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.
			Insert("inventory_items").
			Columns("name", "quantity", "location").
			Values(item.Name, item.Quantity, item.Location).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return apperr.Persistence("insert inventory item", err)
		}

		return r.publish(ctx, tx, domainevents.ItemCreatedEvent{
			ItemID:     item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Location:   item.Location,
			CreatedBy:  createdBy,
			OccurredAt: r.now().UTC(),
		})
	})
}

// Delete locks the item row, collects the orders referencing it, deletes it
// (order_items rows go with it through ON DELETE CASCADE) and publishes
// ItemDeletedEvent, all in one transaction. The row lock blocks concurrent
// order lines from referencing the item between collection and delete.
func (r *InventoryRepository) Delete(ctx context.Context, id int, deletedBy string) ([]int, error) {
	var orderIDs []int
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		lockQuery, args, err := psql.
			Select("id").
			From("inventory_items").
			Where(sq.Eq{"id": id}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("build lock query: %w", err)
		}
		var locked int
		if err := tx.QueryRowContext(ctx, lockQuery, args...).Scan(&locked); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return inventorydomain.ErrItemNotFound
			}
			return apperr.Persistence("lock inventory item", err)
		}

		orderIDs, err = affectedOrders(ctx, tx, id)
		if err != nil {
			return err
		}

		delQuery, args, err := psql.Delete("inventory_items").Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		res, err := tx.ExecContext(ctx, delQuery, args...)
		if err != nil {
			return apperr.Persistence("delete inventory item", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return inventorydomain.ErrItemNotFound
		}

		return r.publish(ctx, tx, domainevents.ItemDeletedEvent{
			ItemID:           id,
			AffectedOrderIDs: orderIDs,
			DeletedBy:        deletedBy,
			OccurredAt:       r.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}
	return orderIDs, nil
}

func affectedOrders(ctx context.Context, q database.Querier, itemID int) ([]int, error) {
	query, args, err := psql.
		Select("order_id").
		Distinct().
		From("order_items").
		Where(sq.Eq{"item_id": itemID}).
		OrderBy("order_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build affected orders query: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence("query affected orders", err)
	}
	defer rows.Close() //nolint:errcheck

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Persistence("scan affected order", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate affected orders", err)
	}
	return ids, nil
}

func (r *InventoryRepository) publish(ctx context.Context, tx *sql.Tx, ev events.Event) error {
	if r.bus == nil {
		return nil
	}
	if err := r.bus.PublishTx(ctx, tx, ev); err != nil {
		return fmt.Errorf("publish %s: %w", ev.EventTopic(), err)
	}
	return nil
}

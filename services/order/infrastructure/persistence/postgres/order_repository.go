package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/events"
	orderdomain "github.com/logitrack/logitrack/services/order/domain"
	domainevents "github.com/logitrack/logitrack/services/order/domain/events"
	"github.com/logitrack/logitrack/services/order/domain/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db  *database.Database
	bus events.TxPublisher
	now func() time.Time
}

// NewOrderRepository returns an OrderRepository. bus may be nil, in which
// case no events are published.
func NewOrderRepository(db *database.Database, bus events.TxPublisher) *OrderRepository {
	return &OrderRepository{db: db, bus: bus, now: time.Now}
}

// ResolveItems looks up the inventory items among ids in one query.
func (r *OrderRepository) ResolveItems(ctx context.Context, ids []int) (map[int]models.ItemRef, error) {
	found := make(map[int]models.ItemRef, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query, args, err := psql.
		Select("id", "name", "quantity").
		From("inventory_items").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve query: %w", err)
	}

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence("resolve inventory items", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var ref models.ItemRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Quantity); err != nil {
			return nil, apperr.Persistence("scan inventory item", err)
		}
		found[ref.ID] = ref
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate inventory items", err)
	}
	return found, nil
}

// Create inserts the order header, then every line in one multi-row insert,
// and publishes OrderPlacedEvent, all in one transaction. A line whose item
// was deleted after resolution fails the foreign key and rolls back the
// whole order as ErrItemVanished.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order, placedBy string, droppedIDs []int) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.
			Insert("orders").
			Columns("customer_name", "date_placed").
			Values(order.CustomerName, order.DatePlaced).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build order insert: %w", err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&order.ID); err != nil {
			return apperr.Persistence("insert order", err)
		}

		if err := insertLines(ctx, tx, order); err != nil {
			return err
		}

		itemIDs := make([]int, len(order.Items))
		for i, line := range order.Items {
			itemIDs[i] = line.Item.ID
		}
		return r.publish(ctx, tx, domainevents.OrderPlacedEvent{
			OrderID:      order.ID,
			CustomerName: order.CustomerName,
			ItemIDs:      itemIDs,
			DroppedIDs:   droppedIDs,
			PlacedBy:     placedBy,
			OccurredAt:   r.now().UTC(),
		})
	})
}

// insertLines stores order.Items and sets their ids and OrderID. SERIAL
// values are drawn in VALUES order, so sorted returned ids match the lines.
func insertLines(ctx context.Context, tx *sql.Tx, order *models.Order) error {
	if len(order.Items) == 0 {
		return nil
	}

	ins := psql.Insert("order_items").Columns("order_id", "item_id", "quantity")
	for _, line := range order.Items {
		ins = ins.Values(order.ID, line.Item.ID, line.Quantity)
	}
	query, args, err := ins.Suffix("RETURNING id").ToSql()
	if err != nil {
		return fmt.Errorf("build order lines insert: %w", err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return lineInsertError(err)
	}
	defer rows.Close() //nolint:errcheck

	ids := make([]int, 0, len(order.Items))
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return apperr.Persistence("scan order line id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return lineInsertError(err)
	}
	if len(ids) != len(order.Items) {
		return apperr.Persistence("insert order lines", fmt.Errorf("stored %d of %d lines", len(ids), len(order.Items)))
	}

	slices.Sort(ids)
	for i := range order.Items {
		order.Items[i].ID = ids[i]
		order.Items[i].OrderID = order.ID
	}
	return nil
}

func lineInsertError(err error) error {
	if database.IsForeignKeyViolation(err) {
		return orderdomain.ErrItemVanished
	}
	return apperr.Persistence("insert order lines", err)
}

// List returns every order with its lines, ordered by order id then line id.
func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	query, args, err := ordersWithLines().
		OrderBy("o.id", "oi.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	return r.queryOrders(ctx, query, args)
}

// GetByID returns the order with its lines or ErrOrderNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query, args, err := ordersWithLines().
		Where(sq.Eq{"o.id": id}).
		OrderBy("oi.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}
	orders, err := r.queryOrders(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, orderdomain.ErrOrderNotFound
	}
	return orders[0], nil
}

// ordersWithLines selects one row per line, or a single row with NULL line
// columns for an order without lines.
func ordersWithLines() sq.SelectBuilder {
	return psql.
		Select(
			"o.id", "o.customer_name", "o.date_placed",
			"oi.id", "oi.quantity",
			"i.id", "i.name", "i.quantity",
		).
		From("orders o").
		LeftJoin("order_items oi ON oi.order_id = o.id").
		LeftJoin("inventory_items i ON i.id = oi.item_id")
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args []any) ([]*models.Order, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence("query orders", err)
	}
	defer rows.Close() //nolint:errcheck

	orders := make([]*models.Order, 0)
	var current *models.Order
	for rows.Next() {
		var (
			o        models.Order
			lineID   sql.NullInt64
			lineQty  sql.NullInt64
			itemID   sql.NullInt64
			itemName sql.NullString
			stockQty sql.NullInt64
		)
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.DatePlaced,
			&lineID, &lineQty, &itemID, &itemName, &stockQty); err != nil {
			return nil, apperr.Persistence("scan order row", err)
		}

		if current == nil || current.ID != o.ID {
			o.DatePlaced = o.DatePlaced.UTC()
			o.Items = []models.OrderItem{}
			current = &o
			orders = append(orders, current)
		}
		if !lineID.Valid {
			continue
		}
		current.Items = append(current.Items, models.OrderItem{
			ID:      int(lineID.Int64),
			OrderID: current.ID,
			Item: models.ItemRef{
				ID:       int(itemID.Int64),
				Name:     itemName.String,
				Quantity: int(stockQty.Int64),
			},
			Quantity: int(lineQty.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate orders", err)
	}
	return orders, nil
}

// Delete removes the order, its lines through ON DELETE CASCADE, and
// publishes OrderDeletedEvent in one transaction.
func (r *OrderRepository) Delete(ctx context.Context, id int, deletedBy string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Delete("orders").Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return apperr.Persistence("delete order", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return apperr.Persistence("delete order", err)
		}
		if n == 0 {
			return orderdomain.ErrOrderNotFound
		}

		return r.publish(ctx, tx, domainevents.OrderDeletedEvent{
			OrderID:    id,
			DeletedBy:  deletedBy,
			OccurredAt: r.now().UTC(),
		})
	})
}

func (r *OrderRepository) publish(ctx context.Context, tx *sql.Tx, ev events.Event) error {
	if r.bus == nil {
		return nil
	}
	if err := r.bus.PublishTx(ctx, tx, ev); err != nil {
		return fmt.Errorf("publish %s: %w", ev.EventTopic(), err)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/logitrack/logitrack/pkg/auth"
	"github.com/logitrack/logitrack/pkg/cache"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/logger"
	"github.com/logitrack/logitrack/pkg/telemetry"
	orderdomain "github.com/logitrack/logitrack/services/order/domain"
	"github.com/logitrack/logitrack/services/order/domain/models"
	"github.com/logitrack/logitrack/services/order/domain/repositories"
)

// CacheTTLs are the lifetimes of cached order reads.
type CacheTTLs struct {
	List  time.Duration // absolute
	Order time.Duration // sliding
}

// CreateOrderInput carries the fields for OrderService.CreateOrder.
type CreateOrderInput struct {
	CustomerName string
	ItemIDs      []int
}

// OrderService builds, reads and deletes orders.
type OrderService struct {
	repo  repositories.OrderRepository
	cache *cache.Cache
	ttl   CacheTTLs
	log   logger.Logger
	now   func() time.Time
}

// NewOrderService returns an OrderService.
func NewOrderService(repo repositories.OrderRepository, c *cache.Cache, ttl CacheTTLs, log logger.Logger) *OrderService {
	return &OrderService{repo: repo, cache: c, ttl: ttl, log: log.With("service", "order"), now: time.Now}
}

// CreateOrder places an order for customerName holding one line per
// requested id that resolves to an inventory item, in request order and with
// duplicates kept. Unknown ids are dropped, never an error. The order and
// its lines commit together. Requires the orders write capability.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderView, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "order.create")
	defer span.End()

	if err := auth.Authorize(ctx, auth.OrdersWrite); err != nil {
		return OrderView{}, err
	}
	caller, _ := auth.PrincipalFromCtx(ctx)

	order, err := models.NewOrder(in.CustomerName, s.now())
	if err != nil {
		return OrderView{}, fmt.Errorf("%w: %w", orderdomain.ErrInvalidOrder, err)
	}

	resolved, err := s.repo.ResolveItems(ctx, distinct(in.ItemIDs))
	if err != nil {
		span.SetStatus(codes.Error, "resolve items")
		return OrderView{}, fmt.Errorf("resolve items: %w", err)
	}

	var dropped []int
	for _, id := range in.ItemIDs {
		ref, ok := resolved[id]
		if !ok {
			dropped = append(dropped, id)
			continue
		}
		order.AddItem(ref)
	}
	span.SetAttributes(
		attribute.Int("order.requested_items", len(in.ItemIDs)),
		attribute.Int("order.lines", len(order.Items)),
		attribute.Int("order.dropped_items", len(dropped)),
	)
	if len(dropped) > 0 {
		s.log.WarnContext(ctx, "order references unknown inventory items, dropping them",
			"customer", order.CustomerName, "dropped_item_ids", dropped)
	}

	if err := s.repo.Create(ctx, order, caller.Email, dropped); err != nil {
		span.SetStatus(codes.Error, "persist order")
		return OrderView{}, fmt.Errorf("create order: %w", err)
	}

	s.evict(ctx, cache.KeyOrdersAll)
	span.SetAttributes(attribute.Int("order.id", order.ID))
	s.log.InfoContext(ctx, "order placed", "order_id", order.ID, "order", order.Summary())
	return toView(order), nil
}

// List returns every order, served from the cache when fresh.
func (s *OrderService) List(ctx context.Context) ([]OrderView, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.KeyOrdersAll, cache.AbsoluteExpiry(s.ttl.List),
		func(ctx context.Context) ([]OrderView, error) {
			orders, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			views := make([]OrderView, len(orders))
			for i, o := range orders {
				views[i] = toView(o)
			}
			return views, nil
		})
}

// Get returns one order, served from the cache when fresh. A missing order is
// never cached.
func (s *OrderService) Get(ctx context.Context, id int) (OrderView, error) {
	if !database.ValidID(id) {
		return OrderView{}, orderdomain.ErrOrderNotFound
	}
	return cache.GetOrLoad(ctx, s.cache, cache.OrderKey(id), cache.SlidingExpiry(s.ttl.Order),
		func(ctx context.Context) (OrderView, error) {
			o, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return OrderView{}, err
			}
			return toView(o), nil
		})
}

// Delete removes an order and its lines. Requires the orders write capability.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	if err := auth.Authorize(ctx, auth.OrdersWrite); err != nil {
		return err
	}
	if !database.ValidID(id) {
		return fmt.Errorf("delete order %d: %w", id, orderdomain.ErrOrderNotFound)
	}
	caller, _ := auth.PrincipalFromCtx(ctx)

	if err := s.repo.Delete(ctx, id, caller.Email); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	s.evict(ctx, cache.KeyOrdersAll, cache.OrderKey(id))
	s.log.InfoContext(ctx, "order deleted", "order_id", id)
	return nil
}

// RemoveItem drops every line for itemID from order in memory and logs when
// nothing matched.
func (s *OrderService) RemoveItem(ctx context.Context, order *models.Order, itemID int) int {
	n := order.RemoveItem(itemID)
	if n == 0 {
		s.log.DebugContext(ctx, "remove item: no matching lines", "order_id", order.ID, "item_id", itemID)
	}
	return n
}

// evict runs after commit. Failures are logged, not returned; the entries
// still expire on their TTL.
func (s *OrderService) evict(ctx context.Context, keys ...string) {
	if err := s.cache.Evict(ctx, keys...); err != nil {
		s.log.ErrorContext(ctx, "cache eviction failed", "keys", keys, "error", err)
	}
}

// distinct returns the sorted unique ids that can name an inventory row.
// Out-of-range ids never resolve and end up dropped.
func distinct(ids []int) []int {
	out := slices.DeleteFunc(slices.Clone(ids), func(id int) bool { return !database.ValidID(id) })
	slices.Sort(out)
	return slices.Compact(out)
}

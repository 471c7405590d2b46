package services

import (
	"context"
	"fmt"
	"time"

	"github.com/logitrack/logitrack/pkg/auth"
	"github.com/logitrack/logitrack/pkg/cache"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/logger"
	inventorydomain "github.com/logitrack/logitrack/services/inventory/domain"
	"github.com/logitrack/logitrack/services/inventory/domain/models"
	"github.com/logitrack/logitrack/services/inventory/domain/repositories"
)

// ItemView is the read model returned for an inventory item.
type ItemView struct {
	ItemID   int    `json:"itemId"   example:"1"`
	Name     string `json:"name"     example:"Forklift battery"`
	Quantity int    `json:"quantity" example:"4"`
	Location string `json:"location" example:"Aisle 3"`
} // @name ItemView

func toView(i *models.InventoryItem) ItemView {
	return ItemView{ItemID: i.ID, Name: i.Name, Quantity: i.Quantity, Location: i.Location}
}

// CreateItemInput carries the fields for InventoryService.Create.
type CreateItemInput struct {
	Name     string
	Quantity int
	Location string
}

// InventoryService serves inventory reads through the cache and evicts the
// affected keys after every committed write.
type InventoryService struct {
	repo    repositories.InventoryRepository
	cache   *cache.Cache
	listTTL time.Duration
	log     logger.Logger
}

// NewInventoryService returns an InventoryService. listTTL is the absolute
// lifetime of the cached item list.
func NewInventoryService(repo repositories.InventoryRepository, c *cache.Cache, listTTL time.Duration, log logger.Logger) *InventoryService {
	return &InventoryService{repo: repo, cache: c, listTTL: listTTL, log: log.With("service", "inventory")}
}

// List returns every item in insertion order, served from the cache when fresh.
func (s *InventoryService) List(ctx context.Context) ([]ItemView, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.KeyInventoryAll, cache.AbsoluteExpiry(s.listTTL),
		func(ctx context.Context) ([]ItemView, error) {
			items, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			views := make([]ItemView, len(items))
			for i, item := range items {
				views[i] = toView(item)
			}
			return views, nil
		})
}

// Create validates and stores a new item. Requires the inventory write
// capability.
func (s *InventoryService) Create(ctx context.Context, in CreateItemInput) (ItemView, error) {
	if err := auth.Authorize(ctx, auth.InventoryWrite); err != nil {
		return ItemView{}, err
	}
	caller, _ := auth.PrincipalFromCtx(ctx)

	item, err := models.NewInventoryItem(in.Name, in.Quantity, in.Location)
	if err != nil {
		return ItemView{}, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidItem, err)
	}

	if err := s.repo.Save(ctx, item, caller.Email); err != nil {
		return ItemView{}, fmt.Errorf("save item: %w", err)
	}

	s.evict(ctx, cache.KeyInventoryAll)
	s.log.InfoContext(ctx, "inventory item created", "item_id", item.ID, "item", item.DisplayInfo())
	return toView(item), nil
}

// Delete removes an item and the order lines referencing it. Requires the
// inventory write capability. Evicts the item list, the order list and every
// order that lost lines.
func (s *InventoryService) Delete(ctx context.Context, id int) error {
	if err := auth.Authorize(ctx, auth.InventoryWrite); err != nil {
		return err
	}
	if !database.ValidID(id) {
		return fmt.Errorf("delete item %d: %w", id, inventorydomain.ErrItemNotFound)
	}
	caller, _ := auth.PrincipalFromCtx(ctx)

	orderIDs, err := s.repo.Delete(ctx, id, caller.Email)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}

	keys := append([]string{cache.KeyInventoryAll, cache.KeyOrdersAll}, cache.OrderKeys(orderIDs)...)
	s.evict(ctx, keys...)
	s.log.InfoContext(ctx, "inventory item deleted", "item_id", id, "affected_orders", len(orderIDs))
	return nil
}

// evict runs after commit. Failures are logged, not returned; the entries
// still expire on their TTL.
func (s *InventoryService) evict(ctx context.Context, keys ...string) {
	if err := s.cache.Evict(ctx, keys...); err != nil {
		s.log.ErrorContext(ctx, "cache eviction failed", "keys", keys, "error", err)
	}
}

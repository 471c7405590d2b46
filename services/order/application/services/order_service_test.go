package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/auth"
	"github.com/logitrack/logitrack/pkg/cache"
	"github.com/logitrack/logitrack/pkg/logger"
	orderdomain "github.com/logitrack/logitrack/services/order/domain"
	"github.com/logitrack/logitrack/services/order/domain/models"
)

type fakeRepo struct {
	mu        sync.Mutex
	stock     map[int]models.ItemRef
	orders    []*models.Order
	nextID    int
	nextLine  int
	getCalls  int
	listCalls int
	createErr error
	dropped   []int
	resolved  [][]int
}

func newFakeRepo(stock ...models.ItemRef) *fakeRepo {
	r := &fakeRepo{stock: map[int]models.ItemRef{}}
	for _, s := range stock {
		r.stock[s.ID] = s
	}
	return r
}

func (r *fakeRepo) ResolveItems(_ context.Context, ids []int) (map[int]models.ItemRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = append(r.resolved, ids)
	out := map[int]models.ItemRef{}
	for _, id := range ids {
		if err := checkInt4(id); err != nil {
			return nil, err
		}
		if ref, ok := r.stock[id]; ok {
			out[id] = ref
		}
	}
	return out, nil
}

func (r *fakeRepo) Create(_ context.Context, o *models.Order, _ string, dropped []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	o.ID = r.nextID
	for i := range o.Items {
		r.nextLine++
		o.Items[i].ID = r.nextLine
		o.Items[i].OrderID = o.ID
	}
	r.dropped = dropped
	cp := *o
	cp.Items = append([]models.OrderItem{}, o.Items...)
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *fakeRepo) List(context.Context) ([]*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	return append([]*models.Order{}, r.orders...), nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	if err := checkInt4(id); err != nil {
		return nil, err
	}
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, orderdomain.ErrOrderNotFound
}

func (r *fakeRepo) Delete(_ context.Context, id int, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := checkInt4(id); err != nil {
		return err
	}
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return orderdomain.ErrOrderNotFound
}

// checkInt4 fails the way the driver does for ids a SERIAL column cannot hold.
func checkInt4(id int) error {
	if id > math.MaxInt32 || id < math.MinInt32 {
		return fmt.Errorf("%d is greater than maximum value for int4", id)
	}
	return nil
}

var (
	pallet = models.ItemRef{ID: 1, Name: "Pallet", Quantity: 7}
	crate  = models.ItemRef{ID: 2, Name: "Crate", Quantity: 0}
	placed = time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
)

func newService(repo *fakeRepo) *OrderService {
	c := cache.New(cache.NewMemoryStore(), logger.Discard())
	svc := NewOrderService(repo, c, CacheTTLs{List: 30 * time.Second, Order: 10 * time.Minute}, logger.Discard())
	svc.now = func() time.Time { return placed }
	return svc
}

func as(role string) context.Context {
	return auth.WithPrincipal(context.Background(), auth.Principal{Email: role + "@logitrack.com", Roles: []string{role}})
}

func TestCreateOrder_KeepsRequestOrderAndDuplicates(t *testing.T) {
	repo := newFakeRepo(pallet, crate)
	svc := newService(repo)

	view, err := svc.CreateOrder(as(auth.RoleManager), CreateOrderInput{
		CustomerName: "  Acme  ",
		ItemIDs:      []int{2, 1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, view.OrderID)
	assert.Equal(t, "Acme", view.CustomerName)
	assert.Equal(t, placed, view.DatePlaced)
	assert.Equal(t, []OrderLineView{
		{ItemID: 2, ItemName: "Crate", Quantity: 1, StockQuantity: 0},
		{ItemID: 1, ItemName: "Pallet", Quantity: 1, StockQuantity: 7},
		{ItemID: 2, ItemName: "Crate", Quantity: 1, StockQuantity: 0},
	}, view.Items)
	assert.Equal(t, [][]int{{1, 2}}, repo.resolved, "ids are resolved once each in a single lookup")
}

func TestCreateOrder_DropsUnknownItems(t *testing.T) {
	repo := newFakeRepo(pallet)
	svc := newService(repo)

	view, err := svc.CreateOrder(as(auth.RoleManager), CreateOrderInput{CustomerName: "Acme", ItemIDs: []int{99, 1, 42}})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].ItemID)
	assert.Equal(t, []int{99, 42}, repo.dropped)
}

func TestCreateOrder_OutOfRangeIdsAreDropped(t *testing.T) {
	repo := newFakeRepo(pallet)
	svc := newService(repo)

	view, err := svc.CreateOrder(as(auth.RoleManager), CreateOrderInput{
		CustomerName: "Acme",
		ItemIDs:      []int{1, 3000000000, 0, -2},
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].ItemID)
	assert.Equal(t, []int{3000000000, 0, -2}, repo.dropped)
	assert.Equal(t, [][]int{{1}}, repo.resolved)
}

func TestCreateOrder_AllUnknownYieldsEmptyOrder(t *testing.T) {
	svc := newService(newFakeRepo())

	view, err := svc.CreateOrder(as(auth.RoleManager), CreateOrderInput{CustomerName: "Acme", ItemIDs: []int{5, 6}})
	require.NoError(t, err)
	assert.NotZero(t, view.OrderID)
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
}

func TestCreateOrder_Rejections(t *testing.T) {
	t.Run("blank customer", func(t *testing.T) {
		repo := newFakeRepo(pallet)
		_, err := newService(repo).CreateOrder(as(auth.RoleManager), CreateOrderInput{CustomerName: "   ", ItemIDs: []int{1}})
		require.ErrorIs(t, err, orderdomain.ErrInvalidOrder)
		require.ErrorIs(t, err, apperr.ErrValidation)
		assert.Empty(t, repo.orders)
	})

	t.Run("staff may not place orders", func(t *testing.T) {
		repo := newFakeRepo(pallet)
		_, err := newService(repo).CreateOrder(as(auth.RoleStaff), CreateOrderInput{CustomerName: "Acme", ItemIDs: []int{1}})
		require.ErrorIs(t, err, apperr.ErrAuthorization)
		assert.Empty(t, repo.orders)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := newService(newFakeRepo()).CreateOrder(context.Background(), CreateOrderInput{CustomerName: "Acme"})
		require.ErrorIs(t, err, apperr.ErrAuthentication)
	})

	t.Run("store failure surfaces unchanged in kind", func(t *testing.T) {
		repo := newFakeRepo(pallet)
		repo.createErr = orderdomain.ErrItemVanished
		_, err := newService(repo).CreateOrder(as(auth.RoleManager), CreateOrderInput{CustomerName: "Acme", ItemIDs: []int{1}})
		require.ErrorIs(t, err, orderdomain.ErrItemVanished)
	})
}

func TestGet_AfterCreateMatchesCreateResponse(t *testing.T) {
	repo := newFakeRepo(pallet, crate)
	svc := newService(repo)

	created, err := svc.CreateOrder(as(auth.RoleManager), CreateOrderInput{CustomerName: "Acme", ItemIDs: []int{1, 2}})
	require.NoError(t, err)

	got, err := svc.Get(as(auth.RoleStaff), created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	again, err := svc.Get(as(auth.RoleStaff), created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, created, again)
	assert.Equal(t, 1, repo.getCalls, "second read is served from the cache")
}

func TestGet_NotFoundIsNotCached(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	_, err := svc.Get(as(auth.RoleStaff), 7)
	require.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
	_, err = svc.Get(as(auth.RoleStaff), 7)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 2, repo.getCalls)
}

func TestOutOfRangeOrderIDIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	_, err := svc.Get(as(auth.RoleStaff), 3000000000)
	require.ErrorIs(t, err, orderdomain.ErrOrderNotFound)

	err = svc.Delete(as(auth.RoleManager), 3000000000)
	require.ErrorIs(t, err, orderdomain.ErrOrderNotFound)

	require.ErrorIs(t, svc.Delete(as(auth.RoleStaff), 3000000000), apperr.ErrAuthorization)
	assert.Zero(t, repo.getCalls)
}

func TestList_EvictedByWrites(t *testing.T) {
	repo := newFakeRepo(pallet)
	svc := newService(repo)
	manager := as(auth.RoleManager)

	list, err := svc.List(manager)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.CreateOrder(manager, CreateOrderInput{CustomerName: "Acme", ItemIDs: []int{1}})
	require.NoError(t, err)

	list, err = svc.List(manager)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, repo.listCalls)

	_, err = svc.List(manager)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "unchanged list is cached")
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(pallet)
	svc := newService(repo)
	manager := as(auth.RoleManager)

	created, err := svc.CreateOrder(manager, CreateOrderInput{CustomerName: "Acme", ItemIDs: []int{1}})
	require.NoError(t, err)
	_, err = svc.Get(manager, created.OrderID)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(as(auth.RoleStaff), created.OrderID), apperr.ErrAuthorization)
	require.NoError(t, svc.Delete(manager, created.OrderID))

	_, err = svc.Get(manager, created.OrderID)
	require.ErrorIs(t, err, orderdomain.ErrOrderNotFound, "cached entry is evicted on delete")

	err = svc.Delete(manager, created.OrderID)
	require.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
	assert.False(t, errors.Is(err, apperr.ErrValidation))
}

func TestRemoveItem(t *testing.T) {
	svc := newService(newFakeRepo())
	o, err := models.NewOrder("Acme", placed)
	require.NoError(t, err)
	o.AddItem(pallet)
	o.AddItem(crate)
	o.AddItem(pallet)

	assert.Equal(t, 2, svc.RemoveItem(context.Background(), o, pallet.ID))
	assert.Equal(t, 0, svc.RemoveItem(context.Background(), o, 99))
	require.Len(t, o.Items, 1)
	assert.Equal(t, crate.ID, o.Items[0].Item.ID)
}

func TestDistinct(t *testing.T) {
	in := []int{3, 1, 3, 2, 1}
	assert.Equal(t, []int{1, 2, 3}, distinct(in))
	assert.Equal(t, []int{3, 1, 3, 2, 1}, in, "input is not reordered")
	assert.Empty(t, distinct(nil))
	assert.Equal(t, []int{5}, distinct([]int{5, 0, -1, 1 << 33, 5}))
}

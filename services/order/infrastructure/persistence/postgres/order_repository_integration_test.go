//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/database/dbtest"
	"github.com/logitrack/logitrack/pkg/events"
	orderdomain "github.com/logitrack/logitrack/services/order/domain"
	"github.com/logitrack/logitrack/services/order/domain/models"
)

type recordingBus struct{ topics []string }

func (b *recordingBus) PublishTx(_ context.Context, _ *sql.Tx, evs ...events.Event) error {
	for _, ev := range evs {
		b.topics = append(b.topics, ev.EventTopic())
	}
	return nil
}

func seedItem(t *testing.T, db *database.Database, name string, qty int) int {
	t.Helper()
	var id int
	require.NoError(t, db.DB().QueryRowContext(context.Background(),
		`INSERT INTO inventory_items (name, quantity, location) VALUES ($1, $2, 'Dock') RETURNING id`,
		name, qty).Scan(&id))
	return id
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	db, _ := dbtest.New(t)
	bus := &recordingBus{}
	repo := NewOrderRepository(db, bus)
	ctx := context.Background()

	pallet := seedItem(t, db, "Pallet", 7)
	crate := seedItem(t, db, "Crate", 2)

	refs, err := repo.ResolveItems(ctx, []int{pallet, crate, 999})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, models.ItemRef{ID: pallet, Name: "Pallet", Quantity: 7}, refs[pallet])

	order, err := models.NewOrder("Acme", time.Date(2024, 6, 1, 12, 30, 0, 123456789, time.UTC))
	require.NoError(t, err)
	order.AddItem(refs[pallet])
	order.AddItem(refs[crate])
	order.AddItem(refs[pallet])
	require.NoError(t, repo.Create(ctx, order, "manager@logitrack.com", []int{999}))
	require.NotZero(t, order.ID)
	for i := 1; i < len(order.Items); i++ {
		assert.Greater(t, order.Items[i].ID, order.Items[i-1].ID)
	}

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)

	empty, err := models.NewOrder("Globex", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, empty, "manager@logitrack.com", nil))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Len(t, all[0].Items, 3)
	assert.Empty(t, all[1].Items)
	assert.NotNil(t, all[1].Items)

	require.NoError(t, repo.Delete(ctx, order.ID, "manager@logitrack.com"))
	_, err = repo.GetByID(ctx, order.ID)
	require.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
	require.ErrorIs(t, repo.Delete(ctx, order.ID, "manager@logitrack.com"), apperr.ErrNotFound)

	var lines int
	require.NoError(t, db.DB().QueryRowContext(ctx, `SELECT count(*) FROM order_items`).Scan(&lines))
	assert.Zero(t, lines)

	assert.Equal(t, []string{"order.placed", "order.placed", "order.deleted"}, bus.topics)
}

func TestOrderRepository_VanishedItemRollsBack(t *testing.T) {
	db, _ := dbtest.New(t)
	repo := NewOrderRepository(db, nil)
	ctx := context.Background()

	kept := seedItem(t, db, "Pallet", 1)
	order, err := models.NewOrder("Acme", time.Now())
	require.NoError(t, err)
	order.AddItem(models.ItemRef{ID: kept, Name: "Pallet", Quantity: 1})
	order.AddItem(models.ItemRef{ID: kept + 100, Name: "Ghost", Quantity: 1})

	err = repo.Create(ctx, order, "manager@logitrack.com", nil)
	require.ErrorIs(t, err, orderdomain.ErrItemVanished)
	require.ErrorIs(t, err, apperr.ErrValidation)

	var orders int
	require.NoError(t, db.DB().QueryRowContext(ctx, `SELECT count(*) FROM orders`).Scan(&orders))
	assert.Zero(t, orders, "order header must roll back with its lines")
}

//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logitrack/pkg/database/dbtest"
	"github.com/logitrack/logitrack/services/audit/domain/models"
)

func TestAuditRepository_Record(t *testing.T) {
	db, _ := dbtest.New(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	e, err := models.NewEntry(uuid.NewString(), "order.placed", "order:1", []byte(`{"orderId":1}`), time.Now())
	require.NoError(t, err)

	written, err := repo.Record(ctx, e)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = repo.Record(ctx, e)
	require.NoError(t, err)
	assert.False(t, written)

	var orderID int
	require.NoError(t, db.DB().QueryRowContext(ctx,
		`SELECT (payload->>'orderId')::int FROM audit_log WHERE event_id = $1`, e.EventID).Scan(&orderID))
	assert.Equal(t, 1, orderID)
}

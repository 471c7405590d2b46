//go:build integration

// Package dbtest starts a disposable PostgreSQL container with the LogiTrack
// schema applied, for repository integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/logitrack/logitrack/migrations"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/logger"
	"github.com/logitrack/logitrack/pkg/migrator"
)

// New returns a migrated Database and its connection URL. The container is
// terminated when the test finishes.
func New(t *testing.T) (*database.Database, string) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("logitrack_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	url, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	log := logger.Discard()
	db, err := database.NewPool(ctx, url, log)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, migrator.Up(ctx, db.DB(), migrations.FS(), log))
	return db, url
}

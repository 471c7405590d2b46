package app

import (
	"github.com/logitrack/logitrack/pkg/auth"
	"github.com/logitrack/logitrack/pkg/cache"
	"github.com/logitrack/logitrack/pkg/config"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/errhttp"
	"github.com/logitrack/logitrack/pkg/events"
	"github.com/logitrack/logitrack/pkg/logger"
)

// Application holds shared infrastructure for all bounded contexts.
// Build it once in main and pass it to each service's Routes function.
//
// Logging: app.Logger is trace-aware; use the *Context methods so trace_id,
// span_id and request_id are attached:
//
//	app.Logger.InfoContext(ctx, "order placed", "order_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	// Cache is the process-wide read-through cache. One instance per process.
	Cache  *cache.Cache
	Tokens *auth.TokenService
	Errors errhttp.Writer
	Redis  *cache.RedisClient // nil unless CACHE_BACKEND=redis
}

// TxPublisher returns the event bus as a publisher, or nil when the process
// runs without one.
func (a *Application) TxPublisher() events.TxPublisher {
	if a.EventBus == nil {
		return nil
	}
	return a.EventBus
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/logitrack/logitrack/docs/swagger"
	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/pkg/auth"
	"github.com/logitrack/logitrack/pkg/cache"
	"github.com/logitrack/logitrack/pkg/config"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/errhttp"
	"github.com/logitrack/logitrack/pkg/events"
	"github.com/logitrack/logitrack/pkg/httpx"
	"github.com/logitrack/logitrack/pkg/logger"
	"github.com/logitrack/logitrack/pkg/telemetry"
	identityApi "github.com/logitrack/logitrack/services/identity/application/api"
	inventoryApi "github.com/logitrack/logitrack/services/inventory/application/api"
	orderApi "github.com/logitrack/logitrack/services/order/application/api"
)

// @title						LogiTrack API
// @version					1.0
// @description				Warehouse inventory and customer orders.
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @host						localhost:8080
// @BasePath					/api
// @schemes					http https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				"Bearer <token>" from POST /auth/login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.Validate(cfg); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting is optional: log and continue on failure.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	tokens, err := auth.NewTokenService(auth.TokenConfigFrom(cfg))
	if err != nil {
		log.Error("failed to setup token service", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(events.Options{
		DatabaseURL: cfg.DatabaseURL,
		Forwarder:   true,
	}, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	if err := eventBus.StartForwarder(runCtx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	store, redisClient, err := newCacheStore(runCtx, cfg, log)
	if err != nil {
		log.Error("failed to setup cache", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck
	}

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Cache:    cache.New(store, log),
		Tokens:   tokens,
		Errors:   errhttp.Writer{Production: cfg.Environment == config.EnvProduction},
		Redis:    redisClient,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Otel:     otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(log),
		},
	)

	checks := httpx.HealthChecks{"database": pool, "events": eventBus}
	if redisClient != nil {
		checks["redis"] = redisClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "cache", cfg.CacheBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	stop()
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api. Register and login
// are public; everything else requires a bearer token.
func registerRoutes(r chi.Router, a *app.Application) {
	protected := r.With(auth.RequireAuth(a.Tokens, a.Logger))
	identityApi.AuthRoutes(r, protected, a)
	inventoryApi.InventoryRoutes(protected, a)
	orderApi.OrderRoutes(protected, a)
}

// newCacheStore builds the store selected by CACHE_BACKEND. The returned
// client is nil for the memory backend.
func newCacheStore(ctx context.Context, cfg *config.Config, log logger.Logger) (cache.Store, *cache.RedisClient, error) {
	if cfg.CacheBackend == config.CacheBackendRedis {
		client, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("redis connected")
		return cache.NewRedisStore(client.Client(), cfg.ServiceName+":"), client, nil
	}

	store := cache.NewMemoryStore()
	go store.Janitor(ctx, time.Minute)
	log.Info("in-process cache ready")
	return store, nil, nil
}

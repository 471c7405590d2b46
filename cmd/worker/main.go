package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/pkg/config"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/events"
	"github.com/logitrack/logitrack/pkg/logger"
	"github.com/logitrack/logitrack/pkg/telemetry"
	"github.com/logitrack/logitrack/services/audit/application/consumer"
	auditServices "github.com/logitrack/logitrack/services/audit/application/services"
)

// auditConsumerGroup shares delivery among worker replicas.
const auditConsumerGroup = "logitrack-audit"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg).With("process", "worker")

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(events.Options{
		DatabaseURL:   cfg.DatabaseURL,
		ConsumerGroup: auditConsumerGroup,
	}, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	if err := registerSubscribers(runCtx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	stop()

	// EventBus.Close (deferred) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers subscribes the audit trail to every domain topic and
// drains handler failures in the background so subscriptions never block.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	svcs := auditServices.New(a)
	errs, err := consumer.Run(ctx, a.EventBus, svcs.Audit, a.Logger)
	if err != nil {
		return err
	}

	go func() {
		for err := range errs {
			a.Logger.ErrorContext(ctx, "subscriber error", "error", err)
			telemetry.CaptureError(ctx, err)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", consumer.Topics)
	return nil
}

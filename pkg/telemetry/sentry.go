package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/config"
)

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: 0.2,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware captures panics and re-panics so the outer Recovery
// middleware still writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}

// CaptureError reports err to Sentry using the request hub in ctx when
// present. Caller mistakes (validation, authentication, authorization, not
// found) are not reported. Without an initialized client it does nothing.
func CaptureError(ctx context.Context, err error) {
	if !Reportable(err) {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}

// Reportable reports whether err indicates a fault worth alerting on.
func Reportable(err error) bool {
	if err == nil {
		return false
	}
	for _, kind := range []error{
		apperr.ErrValidation,
		apperr.ErrAuthentication,
		apperr.ErrAuthorization,
		apperr.ErrNotFound,
	} {
		if errors.Is(err, kind) {
			return false
		}
	}
	return true
}

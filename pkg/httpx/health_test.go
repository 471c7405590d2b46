package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/logitrack/logitrack/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

type healthBody struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

func serveHealth(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var body healthBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, body
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	rr, body := serveHealth(t, httpx.HealthChecks{
		"database":  &stubChecker{},
		"event_bus": &stubChecker{},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body.Status != "ok" || body.Dependencies["database"] != "ok" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestHealthHandler_DependencyDown(t *testing.T) {
	rr, body := serveHealth(t, httpx.HealthChecks{
		"database": &stubChecker{err: errors.New("conn refused")},
		"redis":    &stubChecker{},
	})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if body.Status != "degraded" || body.Dependencies["database"] != "unreachable" || body.Dependencies["redis"] != "ok" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestHealthHandler_SkipsNilChecker(t *testing.T) {
	rr, body := serveHealth(t, httpx.HealthChecks{
		"database": &stubChecker{},
		"redis":    nil,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if _, ok := body.Dependencies["redis"]; ok {
		t.Error("nil checker must not be reported")
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr, _ := serveHealth(t, httpx.HealthChecks{"database": &stubChecker{}})

	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/logitrack/logitrack/pkg/logger"
)

func serveWithAuth(t *testing.T, svc *TokenService, header string) (*httptest.ResponseRecorder, *Principal) {
	t.Helper()

	var captured *Principal
	handler := RequireAuth(svc, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := PrincipalFromCtx(r.Context())
		if err != nil {
			t.Errorf("PrincipalFromCtx: %v", err)
		}
		captured = &p
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, captured
}

func TestRequireAuth_ValidToken(t *testing.T) {
	svc, _ := newTestTokens(t, testTokenConfig())
	tok, err := svc.GenerateToken(manager)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rr, p := serveWithAuth(t, svc, "Bearer "+tok.Value)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if p == nil || p.Email != manager.Email {
		t.Fatalf("expected principal for %s, got %+v", manager.Email, p)
	}
}

func TestRequireAuth_SchemeIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestTokens(t, testTokenConfig())
	tok, _ := svc.GenerateToken(manager)

	rr, _ := serveWithAuth(t, svc, "bearer "+tok.Value)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRequireAuth_Rejects(t *testing.T) {
	svc, _ := newTestTokens(t, testTokenConfig())

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer "},
		{"garbage token", "Bearer abc.def.ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, p := serveWithAuth(t, svc, tt.header)
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
			if p != nil {
				t.Fatal("handler must not run")
			}
			if rr.Header().Get("WWW-Authenticate") == "" {
				t.Fatal("expected WWW-Authenticate challenge")
			}
		})
	}
}

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name   string
		p      *Principal
		status int
	}{
		{"manager passes", &Principal{Email: "m@logitrack.com", Roles: []string{RoleManager}}, http.StatusOK},
		{"staff is forbidden", &Principal{Email: "s@logitrack.com", Roles: []string{RoleStaff}}, http.StatusForbidden},
		{"no principal", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran := false
			handler := RequireCapability(OrdersWrite)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ran = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{"))
			if tt.p != nil {
				req = req.WithContext(WithPrincipal(req.Context(), *tt.p))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rr.Code)
			}
			if ran != (tt.status == http.StatusOK) {
				t.Fatalf("handler ran = %v", ran)
			}
		})
	}
}

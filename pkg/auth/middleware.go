package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/httpx"
	"github.com/logitrack/logitrack/pkg/logger"
)

// TokenValidator is satisfied by *TokenService.
type TokenValidator interface {
	ValidateToken(raw string) (Principal, error)
}

// RequireAuth is a chi middleware that enforces a valid bearer token.
// It reads "Authorization: Bearer <token>", validates it and injects the
// Principal into the request context. Missing or invalid tokens get 401.
//
// After this middleware, handlers can safely call auth.PrincipalFromCtx.
func RequireAuth(tokens TokenValidator, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer`)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			p, err := tokens.ValidateToken(raw)
			if err != nil {
				log.WarnContext(r.Context(), "bearer token rejected", "error", err)
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := logger.WithUser(WithPrincipal(r.Context(), p), p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCapability rejects requests whose principal lacks c before the
// handler reads the body: 401 without a principal, 403 without the role.
// Mount it behind RequireAuth.
func RequireCapability(c Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := Authorize(r.Context(), c); err != nil {
				status := http.StatusForbidden
				if errors.Is(err, apperr.ErrAuthentication) {
					status = http.StatusUnauthorized
				}
				httpx.JSONError(w, status, err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

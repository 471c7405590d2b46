package auth

import (
	"context"
	"fmt"
	"slices"

	"github.com/logitrack/logitrack/pkg/apperr"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller extracted from a validated token.
type Principal struct {
	UserID  string
	Email   string
	TokenID string
	Roles   []string
}

// HasRole reports whether the principal carries role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// ErrNoPrincipal is returned when no principal exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrNoPrincipal = fmt.Errorf("%w: no credentials presented", apperr.ErrAuthentication)

// PrincipalFromCtx extracts the authenticated caller from the request context.
func PrincipalFromCtx(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.Email == "" {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}

// WithPrincipal returns a new context carrying p.
// Used by RequireAuth after validating the bearer token.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

package auth

import (
	"context"
	"fmt"

	"github.com/logitrack/logitrack/pkg/apperr"
)

// Role names stored in the roles table and carried in token claims.
const (
	RoleManager = "Manager"
	RoleStaff   = "Staff"
)

// Roles lists every role the system knows about.
var Roles = []string{RoleManager, RoleStaff}

// Capability is a mutating operation class gated by role. Reads need only
// an authenticated caller.
type Capability string

const (
	InventoryWrite Capability = "inventory:write"
	OrdersWrite    Capability = "orders:write"
)

// Staff is a known role with no write capabilities.
var roleCapabilities = map[string][]Capability{
	RoleManager: {InventoryWrite, OrdersWrite},
}

// Can reports whether any of the principal's roles grants c.
func (p Principal) Can(c Capability) bool {
	for _, r := range p.Roles {
		for _, granted := range roleCapabilities[r] {
			if granted == c {
				return true
			}
		}
	}
	return false
}

// ErrForbidden is returned when the caller is authenticated but lacks a role.
var ErrForbidden = fmt.Errorf("%w: insufficient role", apperr.ErrAuthorization)

// Authorize checks that the caller in ctx holds capability c.
// It fails with ErrNoPrincipal when ctx carries no caller.
func Authorize(ctx context.Context, c Capability) error {
	p, err := PrincipalFromCtx(ctx)
	if err != nil {
		return err
	}
	if !p.Can(c) {
		return fmt.Errorf("%w: %s requires %s", ErrForbidden, p.Email, c)
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/logitrack/logitrack/services/identity/domain/models"
)

// UserRepository is the persistence interface for users and roles.
type UserRepository interface {
	// Create stores user. A second account for the same normalized email
	// fails with ErrEmailTaken and stores nothing.
	Create(ctx context.Context, user *models.User) error

	// FindByEmail returns the user with its roles, or ErrUserNotFound.
	FindByEmail(ctx context.Context, normalizedEmail string) (*models.User, error)

	// EnsureRoles creates any of names that do not exist yet.
	EnsureRoles(ctx context.Context, names []string) error

	// AssignRole grants role to the account under normalizedEmail. It
	// reports whether a grant was added; a missing account or an existing
	// grant is not an error. assignedBy is recorded on the published event.
	AssignRole(ctx context.Context, normalizedEmail, role, assignedBy string) (bool, error)
}

package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a registered account.
type User struct {
	ID           uuid.UUID
	Email        Email
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// NewUser returns an unsaved user with a fresh id and no roles.
func NewUser(email Email, passwordHash string, now time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Roles:        []string{},
		CreatedAt:    now.UTC().Truncate(time.Microsecond),
	}
}

// HasRole reports whether u holds role.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// Package services contains stateless domain services for the identity
// bounded context.
package services

import "github.com/logitrack/logitrack/pkg/auth"

// RoleAssignment grants Role to the account registered under Email.
type RoleAssignment struct {
	Email string
	Role  string
}

// DefaultRoleAssignments are the bootstrap accounts SeedRoles promotes when
// they have registered.
func DefaultRoleAssignments() []RoleAssignment {
	return []RoleAssignment{
		{Email: "manager@logitrack.com", Role: auth.RoleManager},
		{Email: "staff@logitrack.com", Role: auth.RoleStaff},
	}
}

package services

import (
	"slices"
	"testing"

	"github.com/logitrack/logitrack/pkg/auth"
)

func TestDefaultRoleAssignments(t *testing.T) {
	got := DefaultRoleAssignments()
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	for _, a := range got {
		if !slices.Contains(auth.Roles, a.Role) {
			t.Errorf("assignment %+v names an unknown role", a)
		}
	}
	if got[0] != (RoleAssignment{Email: "manager@logitrack.com", Role: auth.RoleManager}) {
		t.Errorf("unexpected manager assignment %+v", got[0])
	}
}

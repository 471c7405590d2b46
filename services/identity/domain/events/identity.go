package events

import "time"

// Topics published by the identity context.
const (
	TopicUserRegistered = "identity.user.registered"
	TopicRoleAssigned   = "identity.role.assigned"
)

// UserRegisteredEvent is published in the transaction that creates a user.
type UserRegisteredEvent struct {
	UserID     string    `json:"userId"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e UserRegisteredEvent) EventTopic() string   { return TopicUserRegistered }
func (e UserRegisteredEvent) EventSubject() string { return subject(e.UserID) }
func (e UserRegisteredEvent) EventTime() time.Time { return e.OccurredAt }

// RoleAssignedEvent is published when SeedRoles grants a role that the
// account did not hold before.
type RoleAssignedEvent struct {
	UserID     string    `json:"userId"`
	Role       string    `json:"role"`
	AssignedBy string    `json:"assignedBy"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e RoleAssignedEvent) EventTopic() string   { return TopicRoleAssigned }
func (e RoleAssignedEvent) EventSubject() string { return subject(e.UserID) }
func (e RoleAssignedEvent) EventTime() time.Time { return e.OccurredAt }

func subject(userID string) string {
	return "user:" + userID
}

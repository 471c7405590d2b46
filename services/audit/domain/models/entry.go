package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded domain event.
type Entry struct {
	EventID    uuid.UUID
	Topic      string
	Subject    string
	Payload    json.RawMessage
	OccurredAt time.Time
}

// NewEntry validates the parts of an event and returns the entry to record.
func NewEntry(eventID, topic, subject string, payload []byte, occurredAt time.Time) (Entry, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return Entry{}, errors.New("event id is not a UUID")
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Entry{}, errors.New("topic is required")
	}
	if !json.Valid(payload) {
		return Entry{}, errors.New("payload is not JSON")
	}
	if occurredAt.IsZero() {
		return Entry{}, errors.New("occurred_at is required")
	}
	return Entry{
		EventID:    id,
		Topic:      topic,
		Subject:    subject,
		Payload:    json.RawMessage(payload),
		OccurredAt: occurredAt.UTC(),
	}, nil
}

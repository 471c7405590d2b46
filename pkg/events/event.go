package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Metadata keys set on every domain event message.
const (
	MetaSubject    = "subject"
	MetaOccurredAt = "occurred_at"
	MetaVersion    = "event_version"
)

// Event is a domain event. Its JSON encoding is the message payload.
type Event interface {
	// EventTopic names the topic the event is published to.
	EventTopic() string
	// EventSubject identifies the affected resource, e.g. "order:12".
	EventSubject() string
	EventTime() time.Time
}

// NewMessage encodes ev as a Watermill message with a fresh UUID and the
// standard metadata.
func NewMessage(ev Event) (*message.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("events: marshal %s: %w", ev.EventTopic(), err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(MetaSubject, ev.EventSubject())
	msg.Metadata.Set(MetaOccurredAt, ev.EventTime().UTC().Format(time.RFC3339Nano))
	msg.Metadata.Set(MetaVersion, "1")
	return msg, nil
}

// TxPublisher is the part of EventBus repositories need to publish inside a
// transaction. A nil TxPublisher disables publishing.
type TxPublisher interface {
	PublishTx(ctx context.Context, tx *sql.Tx, evs ...Event) error
}

// PublishTx publishes evs inside tx, so they are delivered only if tx commits.
func (b *EventBus) PublishTx(ctx context.Context, tx *sql.Tx, evs ...Event) error {
	if len(evs) == 0 {
		return nil
	}
	pub, err := b.NewTxPublisher(tx)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		msg, err := NewMessage(ev)
		if err != nil {
			return err
		}
		injectTrace(ctx, msg)
		if err := pub.Publish(ev.EventTopic(), msg); err != nil { //nolint:contextcheck
			return fmt.Errorf("events: publish %s: %w", ev.EventTopic(), err)
		}
	}
	return nil
}

func injectTrace(ctx context.Context, msgs ...*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

// Package consumer subscribes the audit trail to every domain event topic.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/logitrack/logitrack/pkg/events"
	"github.com/logitrack/logitrack/pkg/logger"
	auditdomain "github.com/logitrack/logitrack/services/audit/domain"
	identityevents "github.com/logitrack/logitrack/services/identity/domain/events"
	inventoryevents "github.com/logitrack/logitrack/services/inventory/domain/events"
	orderevents "github.com/logitrack/logitrack/services/order/domain/events"
)

// Topics is every topic the audit trail records.
var Topics = []string{
	inventoryevents.TopicItemCreated,
	inventoryevents.TopicItemDeleted,
	orderevents.TopicOrderPlaced,
	orderevents.TopicOrderDeleted,
	identityevents.TopicUserRegistered,
	identityevents.TopicRoleAssigned,
}

// Subscriber is satisfied by *events.EventBus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler events.Handler) (<-chan error, error)
}

// Recorder is satisfied by *services.AuditService.
type Recorder interface {
	Record(ctx context.Context, topic string, msg *message.Message) error
}

// Handler adapts rec to topic. Malformed messages are logged and acked;
// every other failure is returned so the bus retries it.
func Handler(topic string, rec Recorder, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		err := rec.Record(ctx, topic, msg)
		if errors.Is(err, auditdomain.ErrMalformedEvent) {
			log.ErrorContext(ctx, "dropping malformed event", "topic", topic, "message_id", msg.UUID, "error", err)
			return nil
		}
		return err
	}
}

// Run subscribes rec to every topic and returns a channel carrying handler
// failures from all subscriptions. It is closed once every subscription ends.
// If any subscription fails, the ones already started are cancelled.
func Run(ctx context.Context, sub Subscriber, rec Recorder, log logger.Logger) (<-chan error, error) {
	ctx, cancel := context.WithCancel(ctx)
	var (
		wg  sync.WaitGroup
		out = make(chan error)
	)
	for _, topic := range Topics {
		errCh, err := sub.Subscribe(ctx, topic, Handler(topic, rec, log))
		if err != nil {
			cancel()
			return nil, fmt.Errorf("subscribe %s: %w", topic, err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for err := range errCh {
				select {
				case out <- err:
				case <-ctx.Done():
				}
			}
		}()
		log.InfoContext(ctx, "subscribed", "topic", topic)
	}

	go func() {
		wg.Wait()
		cancel()
		close(out)
	}()
	return out, nil
}

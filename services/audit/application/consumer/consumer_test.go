package consumer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/logitrack/logitrack/pkg/events"
	"github.com/logitrack/logitrack/pkg/logger"
	auditdomain "github.com/logitrack/logitrack/services/audit/domain"
)

type recorderFunc func(ctx context.Context, topic string, msg *message.Message) error

func (f recorderFunc) Record(ctx context.Context, topic string, msg *message.Message) error {
	return f(ctx, topic, msg)
}

type fakeSubscriber struct {
	mu       sync.Mutex
	handlers map[string]events.Handler
	chans    []chan error
	ctxs     []context.Context
	failOn   string
}

func (s *fakeSubscriber) Subscribe(ctx context.Context, topic string, h events.Handler) (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if topic == s.failOn {
		return nil, errors.New("no such table")
	}
	s.handlers[topic] = h
	ch := make(chan error, 1)
	s.chans = append(s.chans, ch)
	s.ctxs = append(s.ctxs, ctx)
	return ch, nil
}

func TestHandler(t *testing.T) {
	msg := message.NewMessage(watermill.NewUUID(), []byte(`{}`))

	t.Run("malformed is acked", func(t *testing.T) {
		h := Handler("order.placed", recorderFunc(func(context.Context, string, *message.Message) error {
			return fmt.Errorf("%w: bad", auditdomain.ErrMalformedEvent)
		}), logger.Discard())
		if err := h(context.Background(), msg); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("other failures are retried", func(t *testing.T) {
		boom := errors.New("db down")
		h := Handler("order.placed", recorderFunc(func(context.Context, string, *message.Message) error {
			return boom
		}), logger.Discard())
		if err := h(context.Background(), msg); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("topic is passed through", func(t *testing.T) {
		var got string
		h := Handler("inventory.item.deleted", recorderFunc(func(_ context.Context, topic string, _ *message.Message) error {
			got = topic
			return nil
		}), logger.Discard())
		if err := h(context.Background(), msg); err != nil || got != "inventory.item.deleted" {
			t.Fatalf("unexpected result: %v %q", err, got)
		}
	})
}

func TestRun(t *testing.T) {
	sub := &fakeSubscriber{handlers: map[string]events.Handler{}}
	rec := recorderFunc(func(context.Context, string, *message.Message) error { return nil })

	errs, err := Run(context.Background(), sub, rec, logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, topic := range Topics {
		if _, ok := sub.handlers[topic]; !ok {
			t.Errorf("topic %s not subscribed", topic)
		}
	}

	sub.chans[2] <- errors.New("order.placed: failed")
	if got := <-errs; got == nil || got.Error() != "order.placed: failed" {
		t.Fatalf("expected forwarded error, got %v", got)
	}

	for _, ch := range sub.chans {
		close(ch)
	}
	if _, open := <-errs; open {
		t.Fatal("expected merged channel to close")
	}
}

func TestRun_SubscribeFailure(t *testing.T) {
	sub := &fakeSubscriber{handlers: map[string]events.Handler{}, failOn: Topics[1]}
	rec := recorderFunc(func(context.Context, string, *message.Message) error { return nil })

	if _, err := Run(context.Background(), sub, rec, logger.Discard()); err == nil {
		t.Fatal("expected error")
	}

	if len(sub.ctxs) != 1 {
		t.Fatalf("expected one started subscription, got %d", len(sub.ctxs))
	}
	select {
	case <-sub.ctxs[0].Done():
	case <-time.After(time.Second):
		t.Fatal("started subscription was not cancelled")
	}

	// The orphaned forwarder must not block on the unread merged channel.
	sub.chans[0] <- errors.New("late failure")
	sub.chans[0] <- errors.New("second late failure")
	close(sub.chans[0])
}

func TestTopicsAreUnique(t *testing.T) {
	sorted := slices.Clone(Topics)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(Topics) {
		t.Fatalf("duplicate topic in %v", Topics)
	}
}

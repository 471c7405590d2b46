package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/logitrack/logitrack/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func TestRetryWithBackoff(t *testing.T) {
	tests := []struct {
		name      string
		failFirst int
		wantCalls int
		wantErr   bool
	}{
		{"success on first attempt", 0, 1, false},
		{"success after retries", 2, 3, false},
		{"exhausts retries", 10, maxRetries, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			handler := func(context.Context, *message.Message) error {
				calls++
				if calls <= tt.failFirst {
					return errors.New("transient")
				}
				return nil
			}
			err := retryWithBackoff(context.Background(), message.NewMessage("id", nil), handler, maxRetries, time.Millisecond, logger.Discard())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(context.Context, *message.Message) error {
		calls++
		return errors.New("error")
	}
	err := retryWithBackoff(ctx, message.NewMessage("id", nil), handler, maxRetries, time.Second, logger.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call before cancel, got %d", calls)
	}
}

func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

type sampleEvent struct {
	OrderID    int       `json:"orderId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e sampleEvent) EventTopic() string   { return "order.placed" }
func (e sampleEvent) EventSubject() string { return "order:12" }
func (e sampleEvent) EventTime() time.Time { return e.OccurredAt }

func TestNewMessage(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg, err := NewMessage(sampleEvent{OrderID: 12, OccurredAt: at})
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if msg.UUID == "" {
		t.Fatal("expected message UUID")
	}
	if got := msg.Metadata.Get(MetaSubject); got != "order:12" {
		t.Errorf("subject = %q", got)
	}
	if got := msg.Metadata.Get(MetaOccurredAt); got != "2024-05-01T10:00:00Z" {
		t.Errorf("occurred_at = %q", got)
	}

	var decoded sampleEvent
	if err := json.Unmarshal(msg.Payload, &decoded); err != nil || decoded.OrderID != 12 {
		t.Fatalf("payload = %s, %v", msg.Payload, err)
	}
}

func TestInjectTrace_RoundTrip(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	want := span.SpanContext().TraceID()

	msg := message.NewMessage("id", nil)
	injectTrace(ctx, msg)

	carrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		carrier[k] = v
	}
	got := trace.SpanFromContext(otel.GetTextMapPropagator().Extract(context.Background(), carrier))
	if !got.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if got.SpanContext().TraceID() != want {
		t.Errorf("trace ID mismatch: want %s, got %s", want, got.SpanContext().TraceID())
	}
}

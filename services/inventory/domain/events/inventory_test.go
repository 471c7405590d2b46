package events

import (
	"encoding/json"
	"testing"
	"time"

	pkgevents "github.com/logitrack/logitrack/pkg/events"
)

var (
	_ pkgevents.Event = ItemCreatedEvent{}
	_ pkgevents.Event = ItemDeletedEvent{}
)

func TestItemDeletedEvent(t *testing.T) {
	at := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	ev := ItemDeletedEvent{ItemID: 9, AffectedOrderIDs: []int{3, 4}, OccurredAt: at}

	if ev.EventTopic() != TopicItemDeleted {
		t.Errorf("topic = %q", ev.EventTopic())
	}
	if ev.EventSubject() != "inventory_item:9" {
		t.Errorf("subject = %q", ev.EventSubject())
	}

	raw, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"itemId":9,"affectedOrderIds":[3,4],"deletedBy":"","occurredAt":"2024-02-01T08:00:00Z"}`
	if string(raw) != want {
		t.Fatalf("got %s, want %s", raw, want)
	}
}

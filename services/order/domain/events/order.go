package events

import (
	"strconv"
	"time"
)

// Topics published by the order context.
const (
	TopicOrderPlaced  = "order.placed"
	TopicOrderDeleted = "order.deleted"
)

// OrderPlacedEvent is published in the transaction that stores an order.
type OrderPlacedEvent struct {
	OrderID      int       `json:"orderId"`
	CustomerName string    `json:"customerName"`
	ItemIDs      []int     `json:"itemIds"`
	DroppedIDs   []int     `json:"droppedItemIds,omitempty"`
	PlacedBy     string    `json:"placedBy"`
	OccurredAt   time.Time `json:"occurredAt"`
}

func (e OrderPlacedEvent) EventTopic() string   { return TopicOrderPlaced }
func (e OrderPlacedEvent) EventSubject() string { return subject(e.OrderID) }
func (e OrderPlacedEvent) EventTime() time.Time { return e.OccurredAt }

// OrderDeletedEvent is published in the transaction that deletes an order.
type OrderDeletedEvent struct {
	OrderID    int       `json:"orderId"`
	DeletedBy  string    `json:"deletedBy"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e OrderDeletedEvent) EventTopic() string   { return TopicOrderDeleted }
func (e OrderDeletedEvent) EventSubject() string { return subject(e.OrderID) }
func (e OrderDeletedEvent) EventTime() time.Time { return e.OccurredAt }

func subject(orderID int) string {
	return "order:" + strconv.Itoa(orderID)
}

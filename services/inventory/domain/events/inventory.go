package events

import (
	"strconv"
	"time"
)

// Topics published by the inventory context.
const (
	TopicItemCreated = "inventory.item.created"
	TopicItemDeleted = "inventory.item.deleted"
)

// ItemCreatedEvent is published in the transaction that inserts an item.
type ItemCreatedEvent struct {
	ItemID     int       `json:"itemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Location   string    `json:"location"`
	CreatedBy  string    `json:"createdBy"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e ItemCreatedEvent) EventTopic() string   { return TopicItemCreated }
func (e ItemCreatedEvent) EventSubject() string { return subject(e.ItemID) }
func (e ItemCreatedEvent) EventTime() time.Time { return e.OccurredAt }

// ItemDeletedEvent is published in the transaction that deletes an item.
// AffectedOrderIDs lists orders that lost lines through the cascade.
type ItemDeletedEvent struct {
	ItemID           int       `json:"itemId"`
	AffectedOrderIDs []int     `json:"affectedOrderIds"`
	DeletedBy        string    `json:"deletedBy"`
	OccurredAt       time.Time `json:"occurredAt"`
}

func (e ItemDeletedEvent) EventTopic() string   { return TopicItemDeleted }
func (e ItemDeletedEvent) EventSubject() string { return subject(e.ItemID) }
func (e ItemDeletedEvent) EventTime() time.Time { return e.OccurredAt }

func subject(itemID int) string {
	return "inventory_item:" + strconv.Itoa(itemID)
}

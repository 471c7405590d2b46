package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultLineQuantity is the quantity of every line an order is built with.
const DefaultLineQuantity = 1

// ItemRef is the inventory data an order line carries for display.
type ItemRef struct {
	ID       int
	Name     string
	Quantity int
}

// OrderItem is one line of an order. Lines are never merged: the same item
// requested twice yields two lines.
type OrderItem struct {
	ID       int
	OrderID  int
	Item     ItemRef
	Quantity int
}

// Order is the aggregate root for a customer order. Items keep the order in
// which they were added.
type Order struct {
	ID           int
	CustomerName string
	DatePlaced   time.Time
	Items        []OrderItem
}

// NewOrder returns an unsaved, empty order placed at now. DatePlaced is
// stored in UTC at microsecond precision, the resolution of the store.
func NewOrder(customerName string, now time.Time) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, errors.New("customer name is required")
	}
	return &Order{
		CustomerName: customerName,
		DatePlaced:   now.UTC().Truncate(time.Microsecond),
		Items:        []OrderItem{},
	}, nil
}

// AddItem appends a line for item with the default quantity.
func (o *Order) AddItem(item ItemRef) {
	o.Items = append(o.Items, OrderItem{
		OrderID:  o.ID,
		Item:     item,
		Quantity: DefaultLineQuantity,
	})
}

// RemoveItem drops every line for itemID and returns how many were removed.
// Removing an item the order does not hold is a no-op.
func (o *Order) RemoveItem(itemID int) int {
	kept := o.Items[:0]
	for _, line := range o.Items {
		if line.Item.ID != itemID {
			kept = append(kept, line)
		}
	}
	removed := len(o.Items) - len(kept)
	clear(o.Items[len(kept):])
	o.Items = kept
	return removed
}

// Summary returns a one-line description for logs and audit entries.
func (o *Order) Summary() string {
	return fmt.Sprintf("Order #%d for %s | Items: %d | Placed: %s",
		o.ID, o.CustomerName, len(o.Items), o.DatePlaced.Format(time.DateOnly))
}

package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxFieldLength is counted in characters, as request validation counts them.
const maxFieldLength = 255

// InventoryItem is the stock record for one product at one location.
// ID is zero until the item is persisted.
type InventoryItem struct {
	ID       int
	Name     string
	Quantity int
	Location string
}

// NewInventoryItem validates and returns an unsaved InventoryItem.
// Name and location are trimmed; both must be non-empty and quantity must
// not be negative.
func NewInventoryItem(name string, quantity int, location string) (*InventoryItem, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)

	var problems []string
	if name == "" {
		problems = append(problems, "name is required")
	} else if utf8.RuneCountInString(name) > maxFieldLength {
		problems = append(problems, fmt.Sprintf("name must not exceed %d characters", maxFieldLength))
	}
	if location == "" {
		problems = append(problems, "location is required")
	} else if utf8.RuneCountInString(location) > maxFieldLength {
		problems = append(problems, fmt.Sprintf("location must not exceed %d characters", maxFieldLength))
	}
	if quantity < 0 {
		problems = append(problems, "quantity must be zero or greater")
	}
	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "; "))
	}

	return &InventoryItem{Name: name, Quantity: quantity, Location: location}, nil
}

// DisplayInfo returns a one-line description for logs and audit entries.
func (i *InventoryItem) DisplayInfo() string {
	return fmt.Sprintf("Item: %s | Quantity: %d | Location: %s", i.Name, i.Quantity, i.Location)
}

package cache

import "strconv"

// Coarse per-collection keys.
const (
	KeyInventoryAll = "inventory:all"
	KeyOrdersAll    = "orders:all"
)

// OrderKey is the per-identity key for a single order view.
func OrderKey(orderID int) string {
	return "order:" + strconv.Itoa(orderID)
}

// OrderKeys returns the per-identity keys for each order id.
func OrderKeys(orderIDs []int) []string {
	keys := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		keys[i] = OrderKey(id)
	}
	return keys
}

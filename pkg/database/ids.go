package database

import (
	"math"
	"strconv"
)

// MaxSerialID is the largest value a SERIAL (int4) key column can hold.
const MaxSerialID = math.MaxInt32

// ValidID reports whether id can name a row keyed by a SERIAL column.
// Anything else cannot exist and must not reach a query, since pgx refuses
// to encode it as int4.
func ValidID(id int) bool {
	return id >= 1 && id <= MaxSerialID
}

// ParseID parses a decimal route id. ok is false when s is not a number or
// falls outside the SERIAL range.
func ParseID(s string) (id int, ok bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || !ValidID(int(n)) {
		return 0, false
	}
	return int(n), true
}

package domain

import (
	"fmt"

	"github.com/logitrack/logitrack/pkg/apperr"
)

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested inventory item does not exist.
	ErrItemNotFound = fmt.Errorf("%w: inventory item", apperr.ErrNotFound)

	// ErrInvalidItem indicates the item violates domain constraints.
	ErrInvalidItem = fmt.Errorf("%w: invalid inventory item", apperr.ErrValidation)
)

package domain

import (
	"fmt"

	"github.com/logitrack/logitrack/pkg/apperr"
)

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = fmt.Errorf("%w: order", apperr.ErrNotFound)

	// ErrInvalidOrder indicates the order violates domain constraints.
	ErrInvalidOrder = fmt.Errorf("%w: invalid order", apperr.ErrValidation)

	// ErrItemVanished indicates a resolved inventory item was deleted before
	// the order committed.
	ErrItemVanished = fmt.Errorf("%w: an inventory item was removed while the order was being placed", apperr.ErrValidation)
)

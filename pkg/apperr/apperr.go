// Package apperr defines the error kinds shared by every bounded context.
//
// Domain packages declare their own sentinels wrapping one of these kinds so
// that transport code can classify any error with errors.Is:
//
//	var ErrItemNotFound = fmt.Errorf("%w: inventory item", apperr.ErrNotFound)
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication marks missing or bad credentials.
	ErrAuthentication = errors.New("authentication failed")

	// ErrAuthorization marks a caller that lacks the required role.
	ErrAuthorization = errors.New("not authorized")

	// ErrNotFound marks an unknown identifier.
	ErrNotFound = errors.New("not found")

	// ErrConfiguration marks a fatal startup configuration problem.
	ErrConfiguration = errors.New("configuration error")

	// ErrPersistence marks a backing store failure. Never retried automatically.
	ErrPersistence = errors.New("persistence failure")
)

// Validation wraps a descriptive message as an ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Persistence wraps a store error as an ErrPersistence while keeping the
// original error reachable through errors.Is / errors.As.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

package domain

import (
	"fmt"

	"github.com/logitrack/logitrack/pkg/apperr"
)

// Sentinel errors for the identity domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates no account is registered for an email.
	// It never crosses the HTTP boundary; Login reports ErrInvalidCredentials.
	ErrUserNotFound = fmt.Errorf("%w: user", apperr.ErrNotFound)

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = fmt.Errorf("%w: email already registered", apperr.ErrValidation)

	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email address", apperr.ErrValidation)

	// ErrInvalidCredentials is the single failure Login reports for both an
	// unknown email and a wrong password.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperr.ErrAuthentication)
)

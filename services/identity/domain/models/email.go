package models

import (
	"errors"
	"strings"

	"github.com/logitrack/logitrack/pkg/validator"
)

const maxEmailLength = 254

// Email is a value object holding a syntactically valid address as entered.
type Email string

// NewEmail trims s and checks its syntax.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("email is required")
	}
	if len(s) > maxEmailLength {
		return "", errors.New("email is too long")
	}
	if !validator.IsEmail(s) {
		return "", errors.New("email is malformed")
	}
	return Email(s), nil
}

// Normalized is the case-folded form used for uniqueness and lookup.
func (e Email) Normalized() string {
	return NormalizeEmail(string(e))
}

// String returns the address as entered.
func (e Email) String() string {
	return string(e)
}

// NormalizeEmail case-folds s for lookups that skip construction.
func NormalizeEmail(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

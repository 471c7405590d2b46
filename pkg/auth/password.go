package auth

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/logitrack/logitrack/pkg/apperr"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// ErrWeakPassword is returned by CheckPasswordPolicy.
var ErrWeakPassword = fmt.Errorf("%w: password does not meet policy", apperr.ErrValidation)

// CheckPasswordPolicy requires MinPasswordLength characters including a
// digit, a lowercase letter, an uppercase letter and a non-alphanumeric.
// Passwords over MaxPasswordBytes bytes are rejected.
func CheckPasswordPolicy(password string) error {
	var digit, lower, upper, symbol bool
	n := 0
	for _, r := range password {
		n++
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}

	var missing []string
	if n < MinPasswordLength {
		missing = append(missing, fmt.Sprintf("at least %d characters", MinPasswordLength))
	}
	if len(password) > MaxPasswordBytes {
		missing = append(missing, fmt.Sprintf("at most %d bytes", MaxPasswordBytes))
	}
	if !digit {
		missing = append(missing, "a digit")
	}
	if !lower {
		missing = append(missing, "a lowercase letter")
	}
	if !upper {
		missing = append(missing, "an uppercase letter")
	}
	if !symbol {
		missing = append(missing, "a non-alphanumeric character")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: needs %v", ErrWeakPassword, missing)
	}
	return nil
}

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrWeakPassword, err)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// dummyHash is compared against when a login names an unknown account so
// both failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("logitrack-dummy-password"), bcrypt.DefaultCost)

// CheckPassword reports whether password matches hash. An empty hash runs a
// comparison against a fixed dummy and always returns false.
func CheckPassword(hash, password string) (bool, error) {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password: %w", err)
	}
}

package domain

import (
	"errors"
	"testing"

	"github.com/logitrack/logitrack/pkg/apperr"
)

func TestSentinelKinds(t *testing.T) {
	if !errors.Is(ErrItemNotFound, apperr.ErrNotFound) {
		t.Error("ErrItemNotFound must be a not-found error")
	}
	if !errors.Is(ErrInvalidItem, apperr.ErrValidation) {
		t.Error("ErrInvalidItem must be a validation error")
	}
	if errors.Is(ErrItemNotFound, ErrInvalidItem) {
		t.Error("sentinels must be distinct")
	}
}

package domain

import (
	"fmt"

	"github.com/logitrack/logitrack/pkg/apperr"
)

// ErrMalformedEvent marks a message that can never be recorded. Consumers
// acknowledge it instead of retrying.
var ErrMalformedEvent = fmt.Errorf("%w: malformed event", apperr.ErrValidation)

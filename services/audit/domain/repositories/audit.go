package repositories

import (
	"context"

	"github.com/logitrack/logitrack/services/audit/domain/models"
)

// AuditRepository stores audit entries.
type AuditRepository interface {
	// Record stores e unless an entry with the same event id exists. It
	// reports whether a row was written, so redeliveries are harmless.
	Record(ctx context.Context, e models.Entry) (bool, error)
}

package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/services/audit/domain/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// AuditRepository implements repositories.AuditRepository against PostgreSQL.
type AuditRepository struct {
	db *database.Database
}

// NewAuditRepository returns an AuditRepository.
func NewAuditRepository(db *database.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record inserts e, ignoring an event id that was already recorded.
func (r *AuditRepository) Record(ctx context.Context, e models.Entry) (bool, error) {
	query, args, err := psql.
		Insert("audit_log").
		Columns("event_id", "topic", "subject", "payload", "occurred_at").
		Values(e.EventID, e.Topic, e.Subject, string(e.Payload), e.OccurredAt).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build audit insert: %w", err)
	}
	res, err := r.db.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperr.Persistence("insert audit entry", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperr.Persistence("insert audit entry", err)
	}
	return n == 1, nil
}

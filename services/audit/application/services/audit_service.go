package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/logitrack/logitrack/pkg/events"
	"github.com/logitrack/logitrack/pkg/logger"
	auditdomain "github.com/logitrack/logitrack/services/audit/domain"
	"github.com/logitrack/logitrack/services/audit/domain/models"
	"github.com/logitrack/logitrack/services/audit/domain/repositories"
)

// AuditService turns domain event messages into audit entries.
type AuditService struct {
	repo repositories.AuditRepository
	log  logger.Logger
}

// NewAuditService returns an AuditService.
func NewAuditService(repo repositories.AuditRepository, log logger.Logger) *AuditService {
	return &AuditService{repo: repo, log: log.With("service", "audit")}
}

// Record stores msg received on topic. A message that cannot be decoded
// returns ErrMalformedEvent.
func (s *AuditService) Record(ctx context.Context, topic string, msg *message.Message) error {
	occurredAt, err := time.Parse(time.RFC3339Nano, msg.Metadata.Get(events.MetaOccurredAt))
	if err != nil {
		return fmt.Errorf("%w: occurred_at: %w", auditdomain.ErrMalformedEvent, err)
	}
	entry, err := models.NewEntry(msg.UUID, topic, msg.Metadata.Get(events.MetaSubject), msg.Payload, occurredAt)
	if err != nil {
		return fmt.Errorf("%w: %w", auditdomain.ErrMalformedEvent, err)
	}

	written, err := s.repo.Record(ctx, entry)
	if err != nil {
		return fmt.Errorf("record %s: %w", topic, err)
	}
	if !written {
		s.log.DebugContext(ctx, "audit entry already recorded", "event_id", entry.EventID, "topic", topic)
		return nil
	}
	s.log.InfoContext(ctx, "audit entry recorded", "event_id", entry.EventID, "topic", topic, "subject", entry.Subject)
	return nil
}

package services

import (
	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/services/audit/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Audit *AuditService
}

// New wires the audit services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{Audit: NewAuditService(postgres.NewAuditRepository(a.Db), a.Logger)}
}

package services

import (
	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/services/identity/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Auth *AuthService
}

// New wires the identity services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db, a.TxPublisher())
	return &Services{Auth: NewAuthService(repo, a.Tokens, a.Logger)}
}

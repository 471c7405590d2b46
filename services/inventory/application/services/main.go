package services

import (
	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Inventory *InventoryService
}

// New wires the inventory services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewInventoryRepository(a.Db, a.TxPublisher())
	return &Services{
		Inventory: NewInventoryService(repo, a.Cache, a.Config.InventoryListTTL, a.Logger),
	}
}

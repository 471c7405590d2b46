package services

import (
	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/services/order/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Order *OrderService
}

// New wires the order services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewOrderRepository(a.Db, a.TxPublisher())
	return &Services{
		Order: NewOrderService(repo, a.Cache, CacheTTLs{
			List:  a.Config.OrderListTTL,
			Order: a.Config.OrderTTL,
		}, a.Logger),
	}
}

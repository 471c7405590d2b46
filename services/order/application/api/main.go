package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/pkg/auth"
	"github.com/logitrack/logitrack/services/order/application/handlers"
	appsvcs "github.com/logitrack/logitrack/services/order/application/services"
)

// OrderRoutes registers order endpoints. r must already enforce bearer
// authentication; writes additionally require auth.OrdersWrite.
func OrderRoutes(r chi.Router, a *app.Application) {
	Mount(r, handlers.New(appsvcs.New(a), a.Errors))
}

// Mount registers h on r.
func Mount(r chi.Router, h *handlers.Handlers) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id:[0-9]+}", h.Get)

		w := r.With(auth.RequireCapability(auth.OrdersWrite))
		w.Post("/", h.Create)
		w.Delete("/{id:[0-9]+}", h.Delete)
	})
}

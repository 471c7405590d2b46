package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/pkg/auth"
	"github.com/logitrack/logitrack/services/inventory/application/handlers"
	appsvcs "github.com/logitrack/logitrack/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints. r must already enforce
// bearer authentication; writes additionally require auth.InventoryWrite.
func InventoryRoutes(r chi.Router, a *app.Application) {
	Mount(r, handlers.New(appsvcs.New(a), a.Errors))
}

// Mount registers h on r.
func Mount(r chi.Router, h *handlers.Handlers) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.List)

		w := r.With(auth.RequireCapability(auth.InventoryWrite))
		w.Post("/", h.Create)
		w.Delete("/{id:[0-9]+}", h.Delete)
	})
}

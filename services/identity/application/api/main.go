package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/logitrack/logitrack/pkg/app"
	"github.com/logitrack/logitrack/services/identity/application/handlers"
	appsvcs "github.com/logitrack/logitrack/services/identity/application/services"
)

// AuthRoutes registers the public /auth endpoints on public and the
// bearer-protected ones on protected. Both routers may be the same.
func AuthRoutes(public, protected chi.Router, a *app.Application) {
	Mount(public, protected, handlers.New(appsvcs.New(a), a.Errors))
}

// Mount registers h on the given routers.
func Mount(public, protected chi.Router, h *handlers.Handlers) {
	public.Post("/auth/register", h.Register)
	public.Post("/auth/login", h.Login)
	protected.Get("/auth/seed-roles", h.SeedRoles)
}

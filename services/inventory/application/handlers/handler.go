package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/errhttp"
	appsvcs "github.com/logitrack/logitrack/services/inventory/application/services"
	inventorydomain "github.com/logitrack/logitrack/services/inventory/domain"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"not found: inventory item"`
} // @name ErrorResponse

// Handlers serves the /inventory endpoints.
type Handlers struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// New returns Handlers backed by the given services.
func New(svc *appsvcs.Services, errs errhttp.Writer) *Handlers {
	return &Handlers{svc: svc, errs: errs}
}

// itemID reads the {id} route parameter. Routes constrain it to digits, so
// the only failure left is an id outside the key range, reported as not found.
func itemID(r *http.Request) (int, error) {
	id, ok := database.ParseID(chi.URLParam(r, "id"))
	if !ok {
		return 0, inventorydomain.ErrItemNotFound
	}
	return id, nil
}

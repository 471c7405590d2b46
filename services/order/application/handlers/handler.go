package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/errhttp"
	appsvcs "github.com/logitrack/logitrack/services/order/application/services"
	orderdomain "github.com/logitrack/logitrack/services/order/domain"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"not found: order"`
} // @name OrderErrorResponse

// Handlers serves the /orders endpoints.
type Handlers struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// New returns Handlers backed by the given services.
func New(svc *appsvcs.Services, errs errhttp.Writer) *Handlers {
	return &Handlers{svc: svc, errs: errs}
}

// orderID reads the {id} route parameter. Ids outside the key range cannot
// exist and are reported as not found.
func orderID(r *http.Request) (int, error) {
	id, ok := database.ParseID(chi.URLParam(r, "id"))
	if !ok {
		return 0, orderdomain.ErrOrderNotFound
	}
	return id, nil
}

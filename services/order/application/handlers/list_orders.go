package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
)

// List returns every order with its lines.
//
//	@Summary		List orders
//	@Description	Returns all orders with their lines. Served from a cache refreshed at least every 30 seconds and evicted by writes.
//	@Tags			orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		services.OrderView
//	@Failure		401	{object}	ErrorResponse
//	@Router			/orders [get]
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Order.List(r.Context())
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

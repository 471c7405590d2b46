package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
)

// Get returns one order.
//
//	@Summary		Get order
//	@Tags			orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	services.OrderView
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	order, err := h.svc.Order.Get(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

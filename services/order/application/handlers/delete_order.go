package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
)

// Delete removes an order and its lines.
//
//	@Summary		Delete order
//	@Description	Deletes an order and its lines. Requires the Manager role.
//	@Tags			orders
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Order ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id} [delete]
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	if err := h.svc.Order.Delete(r.Context(), id); err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}

package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
)

// Delete removes an inventory item and every order line referencing it.
//
//	@Summary		Delete inventory item
//	@Description	Deletes an item; order lines referencing it are removed with it. Requires the Manager role.
//	@Tags			inventory
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Item ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id} [delete]
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	if err := h.svc.Inventory.Delete(r.Context(), id); err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}

package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
)

// List returns every inventory item.
//
//	@Summary		List inventory
//	@Description	Returns all inventory items in insertion order. Served from a cache refreshed at least every 30 seconds and evicted by writes.
//	@Tags			inventory
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		services.ItemView
//	@Failure		401	{object}	ErrorResponse
//	@Router			/inventory [get]
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inventory.List(r.Context())
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
	pkgvalidator "github.com/logitrack/logitrack/pkg/validator"
	appsvcs "github.com/logitrack/logitrack/services/inventory/application/services"
)

// CreateItemRequest is the request body for POST /inventory.
type CreateItemRequest struct {
	Name     string `json:"name"     validate:"required,notblank,max=255" example:"Forklift battery"`
	Quantity *int   `json:"quantity" validate:"required,gte=0"            example:"4"`
	Location string `json:"location" validate:"required,notblank,max=255" example:"Aisle 3"`
} // @name CreateItemRequest

// Create adds an inventory item.
//
//	@Summary		Create inventory item
//	@Description	Creates an inventory item. Requires the Manager role.
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateItemRequest	true	"Item to create"
//	@Success		201		{object}	services.ItemView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/inventory [post]
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	view, err := h.svc.Inventory.Create(r.Context(), appsvcs.CreateItemInput{
		Name:     req.Name,
		Quantity: *req.Quantity,
		Location: req.Location,
	})
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, view)
}

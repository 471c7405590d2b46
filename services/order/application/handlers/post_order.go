package handlers

import (
	"net/http"

	"github.com/logitrack/logitrack/pkg/httpx"
	pkgvalidator "github.com/logitrack/logitrack/pkg/validator"
	appsvcs "github.com/logitrack/logitrack/services/order/application/services"
)

// CreateOrderRequest is the request body for POST /orders.
type CreateOrderRequest struct {
	CustomerName string `json:"customerName" validate:"required,notblank,max=255" example:"Acme Ltd"`
	ItemIDs      []int  `json:"itemIds"      validate:"required"                  example:"1,2,2"`
} // @name CreateOrderRequest

// Create places an order.
//
//	@Summary		Place order
//	@Description	Places an order with one line per requested item id. Unknown ids are skipped. Requires the Manager role.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateOrderRequest	true	"Order to place"
//	@Success		201		{object}	services.OrderView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	view, err := h.svc.Order.CreateOrder(r.Context(), appsvcs.CreateOrderInput{
		CustomerName: req.CustomerName,
		ItemIDs:      req.ItemIDs,
	})
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, view)
}

package services

import (
	"time"

	"github.com/logitrack/logitrack/services/order/domain/models"
)

// OrderLineView joins an order line to its inventory item.
type OrderLineView struct {
	ItemID        int    `json:"itemId"        example:"3"`
	ItemName      string `json:"itemName"      example:"Forklift battery"`
	Quantity      int    `json:"quantity"      example:"1"`
	StockQuantity int    `json:"stockQuantity" example:"12"`
} // @name OrderLineView

// OrderView is the read model returned for an order.
type OrderView struct {
	OrderID      int             `json:"orderId"      example:"7"`
	CustomerName string          `json:"customerName" example:"Acme Ltd"`
	DatePlaced   time.Time       `json:"datePlaced"   example:"2024-06-01T12:30:00Z"`
	Items        []OrderLineView `json:"items"`
} // @name OrderView

func toView(o *models.Order) OrderView {
	lines := make([]OrderLineView, len(o.Items))
	for i, line := range o.Items {
		lines[i] = OrderLineView{
			ItemID:        line.Item.ID,
			ItemName:      line.Item.Name,
			Quantity:      line.Quantity,
			StockQuantity: line.Item.Quantity,
		}
	}
	return OrderView{
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		DatePlaced:   o.DatePlaced,
		Items:        lines,
	}
}

package response

import (
	"github.com/shopspring/decimal"

	"github.com/gauciv/pos-app/src/order/domain/entity"
)

// CreateOrderResponse respuesta de creación de pedido
type CreateOrderResponse struct {
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
}

// ListOrdersResponse respuesta paginada del listado de pedidos
type ListOrdersResponse struct {
	Items      []*entity.Order `json:"items"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

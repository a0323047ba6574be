package response

import (
	"github.com/shopspring/decimal"

	"github.com/gauciv/pos-app/src/cart/domain/entity"
)

// CartResponse es la vista completa del carrito que consumen las pantallas.
type CartResponse struct {
	StoreID   string            `json:"store_id,omitempty"`
	StoreName string            `json:"store_name,omitempty"`
	Items     []entity.LineItem `json:"items"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
	ItemCount int               `json:"item_count"`
}

// NewCartResponse arma la vista a partir del estado actual del carrito.
func NewCartResponse(cart *entity.Cart) *CartResponse {
	storeID, storeName := cart.Store()
	items := cart.Items()
	if items == nil {
		items = []entity.LineItem{}
	}
	return &CartResponse{
		StoreID:   storeID,
		StoreName: storeName,
		Items:     items,
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}
}

// SubmitOrderResponse son los identificadores de la orden creada.
type SubmitOrderResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

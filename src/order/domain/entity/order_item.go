package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem representa una línea del pedido con snapshot de catálogo.
// Nombre y precio quedan congelados al momento de crear el pedido.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// NewOrderItem crea una línea de pedido con el snapshot del producto
func NewOrderItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, ErrProductIDRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &OrderItem{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

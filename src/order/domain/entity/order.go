package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus representa el estado de un pedido
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// allowedTransitions define la máquina de estados del pedido.
// Un pedido cancelado devuelve su stock.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// ParseOrderStatus valida un estado recibido por la API
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(raw)
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusCompleted, OrderStatusCancelled:
		return status, nil
	}
	return "", ErrInvalidStatus
}

// Order representa un pedido de campo (Aggregate Root).
// Los items llevan snapshot de nombre y precio al momento de crear el pedido.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	CollectorID uuid.UUID       `json:"collector_id"`
	StoreID     uuid.UUID       `json:"store_id"`
	StoreName   string          `json:"store_name,omitempty"`
	Status      OrderStatus     `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []OrderItem     `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewOrder crea un pedido pendiente con sus items y calcula los montos.
// taxRate es la fracción de impuesto sobre el subtotal (ej: 0.12).
func NewOrder(collectorID, storeID uuid.UUID, notes string, items []OrderItem, taxRate decimal.Decimal) (*Order, error) {
	if collectorID == uuid.Nil {
		return nil, ErrCollectorIDRequired
	}
	if storeID == uuid.Nil {
		return nil, ErrStoreIDRequired
	}
	if len(items) == 0 {
		return nil, ErrOrderMustHaveItems
	}

	orderID := uuid.New()
	now := time.Now()

	subtotal := decimal.Zero
	for i := range items {
		items[i].OrderID = orderID
		subtotal = subtotal.Add(items[i].LineTotal)
	}

	taxAmount := subtotal.Mul(taxRate).Round(2)

	return &Order{
		ID:          orderID,
		CollectorID: collectorID,
		StoreID:     storeID,
		Status:      OrderStatusPending,
		Notes:       notes,
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		TotalAmount: subtotal.Add(taxAmount),
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CanTransitionTo indica si el cambio de estado está permitido
func (o *Order) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range allowedTransitions[o.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo aplica un cambio de estado validado
func (o *Order) TransitionTo(target OrderStatus) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// TotalItems retorna el número de líneas del pedido
func (o *Order) TotalItems() int {
	return len(o.Items)
}

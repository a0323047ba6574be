package request

// CreateOrderItemRequest un item del pedido a crear
type CreateOrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest payload para crear un pedido
type CreateOrderRequest struct {
	StoreID string                   `json:"store_id" binding:"required"`
	Notes   string                   `json:"notes"`
	Items   []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest payload para cambiar el estado de un pedido
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package request

// SetStoreRequest asocia el carrito a una tienda destino.
type SetStoreRequest struct {
	StoreID   string `json:"store_id" binding:"required"`
	StoreName string `json:"store_name" binding:"required"`
}

// AddItemRequest agrega un producto del catálogo al carrito.
// Quantity omitida o 0 se interpreta como 1.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest setea la cantidad absoluta de una línea.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SubmitOrderRequest dispara el submit del carrito con notas opcionales.
type SubmitOrderRequest struct {
	Notes string `json:"notes"`
}

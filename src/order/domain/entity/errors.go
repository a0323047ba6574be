package entity

import "errors"

// Errores de dominio del módulo de pedidos
var (
	ErrCollectorIDRequired  = errors.New("collector_id is required")
	ErrStoreIDRequired      = errors.New("store_id is required")
	ErrOrderMustHaveItems   = errors.New("order must contain at least one item")
	ErrProductIDRequired    = errors.New("product_id is required")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrNotOrderOwner        = errors.New("order belongs to another collector")
)

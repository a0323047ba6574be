package entity

import "errors"

var (
	ErrProductNameRequired = errors.New("name is required")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to 0")
	ErrInvalidStock        = errors.New("stock_quantity must be greater than or equal to 0")
	ErrProductNotFound     = errors.New("product not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrReasonRequired      = errors.New("reason is required")
)

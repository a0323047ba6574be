package request

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku"`
	CategoryID    string          `json:"category_id"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Unit          string          `json:"unit"`
	ImageURL      string          `json:"image_url"`
}

// UpdateProductRequest actualización parcial: sólo los campos presentes se aplican.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	SKU           *string          `json:"sku"`
	CategoryID    *string          `json:"category_id"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	Unit          *string          `json:"unit"`
	ImageURL      *string          `json:"image_url"`
	IsActive      *bool            `json:"is_active"`
}

// AdjustStockRequest ajuste manual de inventario con motivo obligatorio.
type AdjustStockRequest struct {
	ChangeAmount int    `json:"change_amount" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
}

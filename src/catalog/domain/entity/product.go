package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo (Aggregate Root).
// StockQuantity es el stock conocido del lado del servidor; el carrito lo
// captura como stock ceiling al momento de agregar.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SKU           string          `json:"sku,omitempty"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"` // Denormalizado desde el cache para listados
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Unit          string          `json:"unit"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProduct crea un nuevo producto activo
func NewProduct(name, description, sku string, categoryID *uuid.UUID, price decimal.Decimal, stockQuantity int, unit, imageURL string) (*Product, error) {
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if stockQuantity < 0 {
		return nil, ErrInvalidStock
	}

	if unit == "" {
		unit = "unit"
	}

	now := time.Now()

	return &Product{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		SKU:           sku,
		CategoryID:    categoryID,
		Price:         price,
		StockQuantity: stockQuantity,
		Unit:          unit,
		ImageURL:      imageURL,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// InventoryLog registra cada movimiento de stock para auditoría.
type InventoryLog struct {
	ID           uuid.UUID  `json:"id"`
	ProductID    uuid.UUID  `json:"product_id"`
	ChangeAmount int        `json:"change_amount"`
	Reason       string     `json:"reason"`
	ReferenceID  *uuid.UUID `json:"reference_id,omitempty"`
	PerformedBy  uuid.UUID  `json:"performed_by"`
	CreatedAt    time.Time  `json:"created_at"`
}

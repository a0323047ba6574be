package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/catalog/domain/entity"
)

// ListProductsFilter son los filtros soportados por el listado de productos.
type ListProductsFilter struct {
	Search          string
	CategoryID      *uuid.UUID
	IncludeInactive bool
}

// ProductRepository define la persistencia del catálogo.
// DecrementStock y RestoreStock son atómicos (guard en el UPDATE) y dejan un
// InventoryLog en la misma transacción: son la operación que consume el
// módulo de órdenes al crear/cancelar.
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter ListProductsFilter, page, pageSize int) ([]*entity.Product, int, error)
	Update(ctx context.Context, product *entity.Product) error
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DecrementStock descuenta qty si hay stock suficiente y retorna el
	// snapshot del producto (nombre y precio al momento de la venta).
	// Falla con ErrInsufficientStock sin cambio de estado si no alcanza.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int, referenceID uuid.UUID, performedBy uuid.UUID) (*entity.Product, error)

	// RestoreStock devuelve qty unidades (compensación o cancelación de orden).
	RestoreStock(ctx context.Context, id uuid.UUID, qty int, reason string, referenceID uuid.UUID, performedBy uuid.UUID) error

	// AdjustStock aplica un ajuste manual (positivo o negativo) con su log.
	AdjustStock(ctx context.Context, id uuid.UUID, changeAmount int, reason string, performedBy uuid.UUID) (*entity.Product, error)

	ListLogs(ctx context.Context, productID uuid.UUID, page, pageSize int) ([]entity.InventoryLog, int, error)
}

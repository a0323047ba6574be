package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/catalog/domain/port"
)

// DeleteProductUseCase caso de uso para baja lógica de un producto.
// Los productos nunca se borran físicamente: las órdenes históricas referencian
// sus snapshots, sólo se marca is_active=false.
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute ejecuta la baja lógica
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID uuid.UUID) error {
	return uc.productRepo.Deactivate(ctx, productID)
}

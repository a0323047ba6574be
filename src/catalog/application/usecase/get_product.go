package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/domain/port"
	"github.com/gauciv/pos-app/src/catalog/infrastructure/cache"
)

// GetProductUseCase caso de uso para obtener un producto por ID
type GetProductUseCase struct {
	productRepo   port.ProductRepository
	categoryCache *cache.CategoryCache
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(productRepo port.ProductRepository, categoryCache *cache.CategoryCache) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo:   productRepo,
		categoryCache: categoryCache,
	}
}

// Execute ejecuta la búsqueda del producto
func (uc *GetProductUseCase) Execute(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if uc.categoryCache != nil && product.CategoryID != nil {
		product.CategoryName = uc.categoryCache.GetName(*product.CategoryID)
	}

	return product, nil
}

package usecase

import (
	"context"
	"math"

	"github.com/gauciv/pos-app/src/catalog/application/response"
	"github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/domain/port"
	"github.com/gauciv/pos-app/src/catalog/infrastructure/cache"
)

// ListProductsUseCase caso de uso para listar productos con búsqueda y paginación
type ListProductsUseCase struct {
	productRepo   port.ProductRepository
	categoryCache *cache.CategoryCache
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository, categoryCache *cache.CategoryCache) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo:   productRepo,
		categoryCache: categoryCache,
	}
}

// Execute ejecuta el listado de productos
func (uc *ListProductsUseCase) Execute(ctx context.Context, filter port.ListProductsFilter, page, pageSize int) (*response.ListProductsResponse, error) {
	// Valores por defecto
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	products, totalCount, err := uc.productRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}

	// Denormalizar nombre de categoría desde el cache
	if uc.categoryCache != nil {
		for _, p := range products {
			if p.CategoryID != nil {
				p.CategoryName = uc.categoryCache.GetName(*p.CategoryID)
			}
		}
	}

	if products == nil {
		products = []*entity.Product{}
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))

	return &response.ListProductsResponse{
		Items:      products,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

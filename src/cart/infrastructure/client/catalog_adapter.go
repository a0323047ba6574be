package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/cart/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/application/usecase"
	catalogentity "github.com/gauciv/pos-app/src/catalog/domain/entity"
)

// ErrProductUnavailable indica que el producto no existe o está dado de baja
var ErrProductUnavailable = errors.New("product not available")

// CatalogAdapter expone el catálogo al carrito (implementa port.ProductCatalog)
type CatalogAdapter struct {
	getProductUC *usecase.GetProductUseCase
}

// NewCatalogAdapter crea una nueva instancia del adaptador
func NewCatalogAdapter(getProductUC *usecase.GetProductUseCase) *CatalogAdapter {
	return &CatalogAdapter{getProductUC: getProductUC}
}

// GetProduct busca un producto activo por ID.
// Un producto dado de baja se trata como inexistente.
func (a *CatalogAdapter) GetProduct(ctx context.Context, productID string) (*entity.ProductInfo, error) {
	if a.getProductUC == nil {
		return nil, fmt.Errorf("catalog not available")
	}

	parsed, err := uuid.Parse(productID)
	if err != nil {
		return nil, ErrProductUnavailable
	}

	product, err := a.getProductUC.Execute(ctx, parsed)
	if err != nil {
		if errors.Is(err, catalogentity.ErrProductNotFound) {
			return nil, ErrProductUnavailable
		}
		return nil, fmt.Errorf("error fetching product: %w", err)
	}

	if !product.IsActive {
		return nil, ErrProductUnavailable
	}

	return &entity.ProductInfo{
		ID:            product.ID.String(),
		Name:          product.Name,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
	}, nil
}

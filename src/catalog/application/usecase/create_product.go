package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/catalog/application/request"
	"github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/domain/port"
)

// CreateProductUseCase caso de uso para dar de alta un producto
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute ejecuta el alta del producto
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	var categoryID *uuid.UUID
	if req.CategoryID != "" {
		parsed, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id format: %w", err)
		}
		categoryID = &parsed
	}

	product, err := entity.NewProduct(
		req.Name,
		req.Description,
		req.SKU,
		categoryID,
		req.Price,
		req.StockQuantity,
		req.Unit,
		req.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	return product, nil
}

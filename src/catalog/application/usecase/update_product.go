package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gauciv/pos-app/src/catalog/application/request"
	"github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/domain/port"
)

// UpdateProductUseCase caso de uso para actualización parcial de un producto
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute aplica sólo los campos presentes en el request y persiste
func (uc *UpdateProductUseCase) Execute(ctx context.Context, productID uuid.UUID, req *request.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, entity.ErrProductNameRequired
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			product.CategoryID = nil
		} else {
			parsed, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("invalid category_id format: %w", err)
			}
			product.CategoryID = &parsed
		}
	}
	if req.Price != nil {
		if req.Price.LessThan(decimal.Zero) {
			return nil, entity.ErrInvalidPrice
		}
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, entity.ErrInvalidStock
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return product, nil
}

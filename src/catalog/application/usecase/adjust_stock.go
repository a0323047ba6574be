package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/catalog/application/request"
	"github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/domain/port"
)

// AdjustStockUseCase caso de uso para ajustes manuales de inventario
type AdjustStockUseCase struct {
	productRepo port.ProductRepository
}

// NewAdjustStockUseCase crea una nueva instancia del caso de uso
func NewAdjustStockUseCase(productRepo port.ProductRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		productRepo: productRepo,
	}
}

// Execute aplica el ajuste y deja el movimiento en inventory_logs
func (uc *AdjustStockUseCase) Execute(ctx context.Context, productID uuid.UUID, performedBy uuid.UUID, req *request.AdjustStockRequest) (*entity.Product, error) {
	if req.Reason == "" {
		return nil, entity.ErrReasonRequired
	}

	product, err := uc.productRepo.AdjustStock(ctx, productID, req.ChangeAmount, req.Reason, performedBy)
	if err != nil {
		return nil, err
	}

	log.Printf("📦 Stock adjusted for product %s: %+d (%s)", productID, req.ChangeAmount, req.Reason)

	return product, nil
}

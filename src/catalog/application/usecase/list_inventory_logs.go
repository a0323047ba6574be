package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/catalog/application/response"
	"github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/domain/port"
)

// ListInventoryLogsUseCase caso de uso para consultar movimientos de stock
type ListInventoryLogsUseCase struct {
	productRepo port.ProductRepository
}

// NewListInventoryLogsUseCase crea una nueva instancia del caso de uso
func NewListInventoryLogsUseCase(productRepo port.ProductRepository) *ListInventoryLogsUseCase {
	return &ListInventoryLogsUseCase{
		productRepo: productRepo,
	}
}

// Execute ejecuta el listado de movimientos
func (uc *ListInventoryLogsUseCase) Execute(ctx context.Context, productID uuid.UUID, page, pageSize int) (*response.ListInventoryLogsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	logs, totalCount, err := uc.productRepo.ListLogs(ctx, productID, page, pageSize)
	if err != nil {
		return nil, err
	}

	if logs == nil {
		logs = []entity.InventoryLog{}
	}

	return &response.ListInventoryLogsResponse{
		Items:      logs,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

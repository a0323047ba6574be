package usecase

import (
	"context"
	"fmt"

	"github.com/gauciv/pos-app/src/order/application/response"
	"github.com/gauciv/pos-app/src/order/domain/entity"
	"github.com/gauciv/pos-app/src/order/domain/port"
)

// ListOrdersUseCase caso de uso para listar pedidos con filtros
type ListOrdersUseCase struct {
	orderRepo port.OrderRepository
}

// NewListOrdersUseCase crea una nueva instancia del caso de uso
func NewListOrdersUseCase(orderRepo port.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute lista pedidos paginados según el filtro
func (uc *ListOrdersUseCase) Execute(ctx context.Context, filter port.ListOrdersFilter, page, pageSize int) (*response.ListOrdersResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	orders, totalCount, err := uc.orderRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	if orders == nil {
		orders = []*entity.Order{}
	}

	totalPages := (totalCount + pageSize - 1) / pageSize

	return &response.ListOrdersResponse{
		Items:      orders,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

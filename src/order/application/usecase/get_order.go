package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/order/domain/entity"
	"github.com/gauciv/pos-app/src/order/domain/port"
)

// GetOrderUseCase caso de uso para obtener un pedido por ID
type GetOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewGetOrderUseCase crea una nueva instancia del caso de uso
func NewGetOrderUseCase(orderRepo port.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute carga el pedido completo. Un recolector sólo puede ver sus
// propios pedidos; el admin puede ver cualquiera.
func (uc *GetOrderUseCase) Execute(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && order.CollectorID != requesterID {
		return nil, entity.ErrNotOrderOwner
	}

	return order, nil
}

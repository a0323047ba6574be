package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	catalogport "github.com/gauciv/pos-app/src/catalog/domain/port"
	"github.com/gauciv/pos-app/src/order/domain/entity"
	"github.com/gauciv/pos-app/src/order/domain/port"
	"github.com/gauciv/pos-app/src/shared/infrastructure/eventbus"
)

// UpdateOrderStatusUseCase caso de uso para avanzar o cancelar un pedido
type UpdateOrderStatusUseCase struct {
	orderRepo   port.OrderRepository
	productRepo catalogport.ProductRepository
	publisher   *eventbus.Publisher
}

// NewUpdateOrderStatusUseCase crea una nueva instancia del caso de uso
func NewUpdateOrderStatusUseCase(
	orderRepo port.OrderRepository,
	productRepo catalogport.ProductRepository,
	publisher *eventbus.Publisher,
) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Execute aplica el cambio de estado validando la máquina de estados.
// Al cancelar, el stock de cada item vuelve al catálogo.
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, performedBy uuid.UUID, orderID uuid.UUID, rawStatus string) (*entity.Order, error) {
	target, err := entity.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	if err := order.TransitionTo(target); err != nil {
		return nil, fmt.Errorf("cannot transition order %s from %s to %s: %w", order.OrderNumber, previous, target, err)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, order.ID, order.Status); err != nil {
		return nil, fmt.Errorf("error updating order status: %w", err)
	}

	// La cancelación devuelve el stock descontado al crear el pedido
	if target == entity.OrderStatusCancelled {
		for _, item := range order.Items {
			err := uc.productRepo.RestoreStock(ctx, item.ProductID, item.Quantity, "order_cancelled", order.ID, performedBy)
			if err != nil {
				log.Printf("❌ CRITICAL: failed to restore stock for product %s (order %s): %v", item.ProductID, order.ID, err)
			}
		}
	}

	event := map[string]interface{}{
		"order_id":        order.ID.String(),
		"order_number":    order.OrderNumber,
		"previous_status": string(previous),
		"new_status":      string(order.Status),
	}
	if err := uc.publisher.Publish(ctx, "order.status_changed", "order", order.ID.String(), event); err != nil {
		log.Printf("⚠️  Error publishing order.status_changed for %s: %v", order.ID, err)
	}

	log.Printf("✅ Order %s: %s → %s", order.OrderNumber, previous, order.Status)

	return order, nil
}

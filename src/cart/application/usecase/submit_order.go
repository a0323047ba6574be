package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/gauciv/pos-app/src/cart/application/response"
	"github.com/gauciv/pos-app/src/cart/domain/entity"
	"github.com/gauciv/pos-app/src/cart/domain/port"
)

// SubmitOrderUseCase coordina la transición one-shot de "carrito editable" a
// "orden enviada": el carrito se limpia si y sólo si el colaborador externo
// confirma la creación. Un fallo de red o rechazo del servidor jamás destruye
// la orden-en-progreso del cobrador.
type SubmitOrderUseCase struct {
	orderCreator port.OrderCreator
}

// NewSubmitOrderUseCase crea una nueva instancia del caso de uso
func NewSubmitOrderUseCase(orderCreator port.OrderCreator) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		orderCreator: orderCreator,
	}
}

// Execute ejecuta el submit del carrito:
// 1. Guard de submit en vuelo (a lo sumo UNA llamada externa pendiente por carrito)
// 2. Precondiciones: tienda asociada y carrito no vacío — fallan rápido, sin llamada externa
// 3. Snapshot {store_id, notes, items[{product_id, quantity}]}
// 4. Invocar el colaborador exactamente una vez
// 5. Éxito → Clear() atómico y retorno del resultado; fallo → carrito intacto
func (uc *SubmitOrderUseCase) Execute(ctx context.Context, collectorID string, cart *entity.Cart, notes string) (*response.SubmitOrderResponse, error) {
	if !cart.BeginSubmit() {
		return nil, entity.ErrSubmissionInFlight
	}
	defer cart.EndSubmit()

	// Precondiciones locales: nunca llegan al colaborador externo
	storeID, _ := cart.Store()
	if storeID == "" {
		return nil, entity.ErrNoStoreSelected
	}

	lines := cart.Items()
	if len(lines) == 0 {
		return nil, entity.ErrEmptyCart
	}

	items := make([]port.OrderItemRef, 0, len(lines))
	for _, line := range lines {
		items = append(items, port.OrderItemRef{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	receipt, err := uc.orderCreator.CreateOrder(ctx, &port.OrderRequest{
		CollectorID: collectorID,
		StoreID:     storeID,
		Notes:       notes,
		Items:       items,
	})
	if err != nil {
		// Carrito intacto: el cobrador puede reintentar sin recargar su pedido
		log.Printf("❌ Order submission failed for collector %s: %v", collectorID, err)
		return nil, fmt.Errorf("error submitting order: %w", err)
	}

	cart.Clear()

	log.Printf("✅ Order %s submitted by collector %s (store %s)", receipt.OrderNumber, collectorID, storeID)

	return &response.SubmitOrderResponse{
		OrderID:     receipt.OrderID,
		OrderNumber: receipt.OrderNumber,
	}, nil
}

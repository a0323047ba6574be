package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogport "github.com/gauciv/pos-app/src/catalog/domain/port"
	"github.com/gauciv/pos-app/src/order/application/request"
	"github.com/gauciv/pos-app/src/order/application/response"
	"github.com/gauciv/pos-app/src/order/domain/entity"
	"github.com/gauciv/pos-app/src/order/domain/port"
	"github.com/gauciv/pos-app/src/shared/infrastructure/eventbus"
)

// CreateOrderUseCase caso de uso para crear un pedido
type CreateOrderUseCase struct {
	orderRepo   port.OrderRepository
	productRepo catalogport.ProductRepository
	publisher   *eventbus.Publisher
	taxRate     decimal.Decimal
}

// NewCreateOrderUseCase crea una nueva instancia del caso de uso
func NewCreateOrderUseCase(
	orderRepo port.OrderRepository,
	productRepo catalogport.ProductRepository,
	publisher *eventbus.Publisher,
	taxRate decimal.Decimal,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		taxRate:     taxRate,
	}
}

// Execute crea el pedido con descuento atómico de stock y compensación:
// 1. Tomar snapshot de catálogo (nombre y precio) de cada producto
// 2. Crear aggregate Order (en memoria)
// 3. Descontar stock por item; si un item falla, compensar los anteriores
// 4. Persistir el pedido; si falla, compensar todo el stock descontado
// 5. Publicar evento order.created (no bloqueante)
func (uc *CreateOrderUseCase) Execute(ctx context.Context, collectorID uuid.UUID, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, entity.ErrOrderMustHaveItems
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, entity.ErrStoreIDRequired
	}

	// PASO 1: snapshot de catálogo para cada item
	var items []entity.OrderItem
	for _, itemReq := range req.Items {
		productID, err := uuid.Parse(itemReq.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product_id %s: %w", itemReq.ProductID, entity.ErrProductIDRequired)
		}

		product, err := uc.productRepo.FindByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("error fetching product %s: %w", itemReq.ProductID, err)
		}

		item, err := entity.NewOrderItem(productID, product.Name, product.Price, itemReq.Quantity)
		if err != nil {
			return nil, fmt.Errorf("error creating order item for product %s: %w", itemReq.ProductID, err)
		}
		items = append(items, *item)
	}

	// PASO 2: crear aggregate en memoria, aún no persiste
	order, err := entity.NewOrder(collectorID, storeID, req.Notes, items, uc.taxRate)
	if err != nil {
		return nil, fmt.Errorf("error creating order entity: %w", err)
	}

	// PASO 3: descuento atómico por item con compensación de los anteriores
	processed := make([]entity.OrderItem, 0, len(order.Items))

	for _, item := range order.Items {
		_, err := uc.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity, order.ID, collectorID)
		if err != nil {
			uc.compensateStock(ctx, collectorID, order.ID, processed, "order_creation_failed")
			return nil, fmt.Errorf("error decrementing stock for product %s: %w", item.ProductID, err)
		}
		processed = append(processed, item)
	}

	// PASO 4: persistir SOLO si todo el stock salió correctamente
	if err := uc.orderRepo.Save(ctx, order); err != nil {
		// CRITICO: el stock ya fue descontado, hay que revertirlo
		uc.compensateStock(ctx, collectorID, order.ID, processed, "order_persistence_failed")
		return nil, fmt.Errorf("error saving order (stock compensated): %w", err)
	}

	// PASO 5: evento de dominio, un fallo del broker nunca tumba el pedido
	if err := uc.publisher.Publish(ctx, "order.created", "order", order.ID.String(), order); err != nil {
		log.Printf("⚠️  Error publishing order.created for %s: %v", order.ID, err)
	}

	log.Printf("✅ Order %s created for store %s (%d items)", order.OrderNumber, order.StoreID, order.TotalItems())

	return &response.CreateOrderResponse{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		Subtotal:    order.Subtotal,
		TaxAmount:   order.TaxAmount,
		TotalAmount: order.TotalAmount,
		TotalItems:  order.TotalItems(),
	}, nil
}

// compensateStock devuelve el stock de los items ya descontados
func (uc *CreateOrderUseCase) compensateStock(
	ctx context.Context,
	collectorID, orderID uuid.UUID,
	items []entity.OrderItem,
	reason string,
) {
	for _, item := range items {
		err := uc.productRepo.RestoreStock(ctx, item.ProductID, item.Quantity, reason, orderID, collectorID)
		if err != nil {
			// Si falla la compensación queda para auditoría manual,
			// no detener el flujo
			log.Printf("❌ CRITICAL: failed to restore stock for product %s (order %s): %v", item.ProductID, orderID, err)
		}
	}
}

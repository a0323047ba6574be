package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/order/domain/entity"
)

// ListOrdersFilter filtros opcionales para el listado de pedidos
type ListOrdersFilter struct {
	CollectorID *uuid.UUID
	StoreID     *uuid.UUID
	Status      *entity.OrderStatus
}

// OrderRepository puerto de persistencia de pedidos
type OrderRepository interface {
	// Save persiste el pedido con sus items y le asigna el número de orden
	Save(ctx context.Context, order *entity.Order) error

	// FindByID carga el pedido completo con sus items
	FindByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// List retorna pedidos paginados con el total de coincidencias
	List(ctx context.Context, filter ListOrdersFilter, page, pageSize int) ([]*entity.Order, int, error)

	// UpdateStatus persiste el cambio de estado de un pedido
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error
}

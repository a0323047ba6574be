package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogentity "github.com/gauciv/pos-app/src/catalog/domain/entity"
	catalogport "github.com/gauciv/pos-app/src/catalog/domain/port"
	"github.com/gauciv/pos-app/src/order/application/request"
	"github.com/gauciv/pos-app/src/order/domain/entity"
	"github.com/gauciv/pos-app/src/order/domain/port"
)

// stockChange registra un movimiento de stock observado por el fake
type stockChange struct {
	productID uuid.UUID
	qty       int
	reason    string
}

// fakeProductRepo simula el catálogo con stock en memoria
type fakeProductRepo struct {
	products   map[uuid.UUID]*catalogentity.Product
	failStock  map[uuid.UUID]bool // productos sin stock suficiente
	decrements []stockChange
	restores   []stockChange
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:  make(map[uuid.UUID]*catalogentity.Product),
		failStock: make(map[uuid.UUID]bool),
	}
}

func (f *fakeProductRepo) addProduct(name, price string, stock int) uuid.UUID {
	id := uuid.New()
	f.products[id] = &catalogentity.Product{
		ID:            id,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      true,
	}
	return id
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalogentity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalogentity.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int, referenceID, performedBy uuid.UUID) (*catalogentity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalogentity.ErrProductNotFound
	}
	if f.failStock[id] || p.StockQuantity < qty {
		return nil, catalogentity.ErrInsufficientStock
	}
	p.StockQuantity -= qty
	f.decrements = append(f.decrements, stockChange{productID: id, qty: qty})
	return p, nil
}

func (f *fakeProductRepo) RestoreStock(ctx context.Context, id uuid.UUID, qty int, reason string, referenceID, performedBy uuid.UUID) error {
	if p, ok := f.products[id]; ok {
		p.StockQuantity += qty
	}
	f.restores = append(f.restores, stockChange{productID: id, qty: qty, reason: reason})
	return nil
}

func (f *fakeProductRepo) Save(ctx context.Context, product *catalogentity.Product) error { return nil }
func (f *fakeProductRepo) List(ctx context.Context, filter catalogport.ListProductsFilter, page, pageSize int) ([]*catalogentity.Product, int, error) {
	return nil, 0, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, product *catalogentity.Product) error {
	return nil
}
func (f *fakeProductRepo) Deactivate(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeProductRepo) AdjustStock(ctx context.Context, id uuid.UUID, changeAmount int, reason string, performedBy uuid.UUID) (*catalogentity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListLogs(ctx context.Context, productID uuid.UUID, page, pageSize int) ([]catalogentity.InventoryLog, int, error) {
	return nil, 0, nil
}

// fakeOrderRepo persiste pedidos en memoria
type fakeOrderRepo struct {
	saved   []*entity.Order
	saveErr error
}

func (f *fakeOrderRepo) Save(ctx context.Context, order *entity.Order) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	order.OrderNumber = "ORD-20260829-000001"
	f.saved = append(f.saved, order)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	for _, o := range f.saved {
		if o.ID == orderID {
			return o, nil
		}
	}
	return nil, entity.ErrOrderNotFound
}

func (f *fakeOrderRepo) List(ctx context.Context, filter port.ListOrdersFilter, page, pageSize int) ([]*entity.Order, int, error) {
	return f.saved, len(f.saved), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	order, err := f.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	order.Status = status
	return nil
}

func TestCreateOrderHappyPath(t *testing.T) {
	productRepo := newFakeProductRepo()
	p1 := productRepo.addProduct("Harina", "12.50", 10)
	p2 := productRepo.addProduct("Azúcar", "8.00", 20)
	orderRepo := &fakeOrderRepo{}

	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, decimal.RequireFromString("0.12"))

	resp, err := uc.Execute(context.Background(), uuid.New(), &request.CreateOrderRequest{
		StoreID: uuid.New().String(),
		Items: []request.CreateOrderItemRequest{
			{ProductID: p1.String(), Quantity: 3},
			{ProductID: p2.String(), Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.OrderNumber != "ORD-20260829-000001" {
		t.Errorf("unexpected order number: %s", resp.OrderNumber)
	}
	if resp.Status != "pending" {
		t.Errorf("expected pending, got %s", resp.Status)
	}
	if got := resp.TotalAmount.String(); got != "59.92" {
		t.Errorf("expected total 59.92, got %s", got)
	}

	if productRepo.products[p1].StockQuantity != 7 {
		t.Errorf("expected stock 7 for p1, got %d", productRepo.products[p1].StockQuantity)
	}
	if productRepo.products[p2].StockQuantity != 18 {
		t.Errorf("expected stock 18 for p2, got %d", productRepo.products[p2].StockQuantity)
	}
	if len(productRepo.restores) != 0 {
		t.Errorf("expected no compensations, got %d", len(productRepo.restores))
	}
	if len(orderRepo.saved) != 1 {
		t.Fatalf("expected 1 saved order, got %d", len(orderRepo.saved))
	}

	// Snapshot de catálogo en los items
	saved := orderRepo.saved[0]
	if saved.Items[0].ProductName != "Harina" || saved.Items[0].UnitPrice.String() != "12.5" {
		t.Errorf("expected catalog snapshot on items, got %+v", saved.Items[0])
	}
}

func TestCreateOrderCompensatesOnStockFailure(t *testing.T) {
	productRepo := newFakeProductRepo()
	p1 := productRepo.addProduct("Harina", "12.50", 10)
	p2 := productRepo.addProduct("Azúcar", "8.00", 20)
	productRepo.failStock[p2] = true
	orderRepo := &fakeOrderRepo{}

	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, decimal.Zero)

	_, err := uc.Execute(context.Background(), uuid.New(), &request.CreateOrderRequest{
		StoreID: uuid.New().String(),
		Items: []request.CreateOrderItemRequest{
			{ProductID: p1.String(), Quantity: 3},
			{ProductID: p2.String(), Quantity: 2},
		},
	})
	if !errors.Is(err, catalogentity.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// El primer item fue descontado y luego compensado
	if len(productRepo.restores) != 1 {
		t.Fatalf("expected 1 compensation, got %d", len(productRepo.restores))
	}
	if productRepo.restores[0].productID != p1 || productRepo.restores[0].reason != "order_creation_failed" {
		t.Errorf("unexpected compensation: %+v", productRepo.restores[0])
	}
	if productRepo.products[p1].StockQuantity != 10 {
		t.Errorf("expected stock restored to 10, got %d", productRepo.products[p1].StockQuantity)
	}
	if len(orderRepo.saved) != 0 {
		t.Error("expected no order persisted")
	}
}

func TestCreateOrderCompensatesOnPersistenceFailure(t *testing.T) {
	productRepo := newFakeProductRepo()
	p1 := productRepo.addProduct("Harina", "12.50", 10)
	orderRepo := &fakeOrderRepo{saveErr: errors.New("connection reset")}

	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, decimal.Zero)

	_, err := uc.Execute(context.Background(), uuid.New(), &request.CreateOrderRequest{
		StoreID: uuid.New().String(),
		Items: []request.CreateOrderItemRequest{
			{ProductID: p1.String(), Quantity: 3},
		},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(productRepo.restores) != 1 {
		t.Fatalf("expected 1 compensation, got %d", len(productRepo.restores))
	}
	if productRepo.restores[0].reason != "order_persistence_failed" {
		t.Errorf("unexpected reason: %s", productRepo.restores[0].reason)
	}
	if productRepo.products[p1].StockQuantity != 10 {
		t.Errorf("expected stock restored to 10, got %d", productRepo.products[p1].StockQuantity)
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := &fakeOrderRepo{}

	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, decimal.Zero)

	_, err := uc.Execute(context.Background(), uuid.New(), &request.CreateOrderRequest{
		StoreID: uuid.New().String(),
		Items: []request.CreateOrderItemRequest{
			{ProductID: uuid.New().String(), Quantity: 1},
		},
	})
	if !errors.Is(err, catalogentity.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(productRepo.decrements) != 0 {
		t.Error("expected no stock movement")
	}
}

func TestUpdateStatusCancellationRestoresStock(t *testing.T) {
	productRepo := newFakeProductRepo()
	p1 := productRepo.addProduct("Harina", "12.50", 10)
	orderRepo := &fakeOrderRepo{}

	createUC := NewCreateOrderUseCase(orderRepo, productRepo, nil, decimal.Zero)
	resp, err := createUC.Execute(context.Background(), uuid.New(), &request.CreateOrderRequest{
		StoreID: uuid.New().String(),
		Items: []request.CreateOrderItemRequest{
			{ProductID: p1.String(), Quantity: 4},
		},
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	updateUC := NewUpdateOrderStatusUseCase(orderRepo, productRepo, nil)
	orderID := uuid.MustParse(resp.OrderID)

	order, err := updateUC.Execute(context.Background(), uuid.New(), orderID, "cancelled")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != entity.OrderStatusCancelled {
		t.Errorf("expected cancelled, got %s", order.Status)
	}
	if productRepo.products[p1].StockQuantity != 10 {
		t.Errorf("expected stock back to 10, got %d", productRepo.products[p1].StockQuantity)
	}
	if len(productRepo.restores) != 1 || productRepo.restores[0].reason != "order_cancelled" {
		t.Errorf("unexpected restores: %+v", productRepo.restores)
	}

	// Un pedido cancelado no puede avanzar
	if _, err := updateUC.Execute(context.Background(), uuid.New(), orderID, "confirmed"); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

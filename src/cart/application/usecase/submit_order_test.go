package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gauciv/pos-app/src/cart/domain/entity"
	"github.com/gauciv/pos-app/src/cart/domain/port"
)

// fakeOrderCreator registra las llamadas y responde según lo configurado
type fakeOrderCreator struct {
	mu      sync.Mutex
	calls   int
	lastReq *port.OrderRequest
	receipt *port.OrderReceipt
	err     error
	block   chan struct{} // si no es nil, la llamada espera hasta que se cierre
}

func (f *fakeOrderCreator) CreateOrder(ctx context.Context, req *port.OrderRequest) (*port.OrderReceipt, error) {
	f.mu.Lock()
	f.calls++
	f.lastReq = req
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

func (f *fakeOrderCreator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func loadedCart() *entity.Cart {
	cart := entity.NewCart()
	cart.SetStore("store-1", "Tienda Centro")
	cart.AddItem(entity.ProductInfo{
		ID:            "p1",
		Name:          "Harina",
		Price:         decimal.RequireFromString("12.50"),
		StockQuantity: 10,
	}, 3)
	cart.AddItem(entity.ProductInfo{
		ID:            "p2",
		Name:          "Azúcar",
		Price:         decimal.RequireFromString("8.00"),
		StockQuantity: 20,
	}, 2)
	return cart
}

func TestSubmitClearsCartOnSuccess(t *testing.T) {
	creator := &fakeOrderCreator{
		receipt: &port.OrderReceipt{OrderID: "o1", OrderNumber: "ORD-20260829-000001"},
	}
	uc := NewSubmitOrderUseCase(creator)
	cart := loadedCart()

	resp, err := uc.Execute(context.Background(), "collector-1", cart, "entregar temprano")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.OrderNumber != "ORD-20260829-000001" {
		t.Errorf("unexpected order number: %s", resp.OrderNumber)
	}

	if !cart.IsEmpty() {
		t.Error("expected cart cleared after successful submit")
	}
	storeID, _ := cart.Store()
	if storeID != "" {
		t.Error("expected store unbound after successful submit")
	}

	req := creator.lastReq
	if req.StoreID != "store-1" || req.CollectorID != "collector-1" || req.Notes != "entregar temprano" {
		t.Errorf("unexpected request: %+v", req)
	}
	if len(req.Items) != 2 || req.Items[0].ProductID != "p1" || req.Items[0].Quantity != 3 {
		t.Errorf("unexpected items: %+v", req.Items)
	}
}

func TestSubmitPreservesCartOnFailure(t *testing.T) {
	creator := &fakeOrderCreator{err: errors.New("orders-api unavailable")}
	uc := NewSubmitOrderUseCase(creator)
	cart := loadedCart()

	_, err := uc.Execute(context.Background(), "collector-1", cart, "")
	if err == nil {
		t.Fatal("expected error")
	}

	// Carrito intacto, byte a byte
	if cart.ItemCount() != 5 {
		t.Errorf("expected item count 5, got %d", cart.ItemCount())
	}
	storeID, storeName := cart.Store()
	if storeID != "store-1" || storeName != "Tienda Centro" {
		t.Errorf("expected store binding preserved, got %q %q", storeID, storeName)
	}

	// Un segundo intento debe poder ejecutarse
	creator.err = nil
	creator.receipt = &port.OrderReceipt{OrderID: "o1", OrderNumber: "ORD-20260829-000002"}
	if _, err := uc.Execute(context.Background(), "collector-1", cart, ""); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if !cart.IsEmpty() {
		t.Error("expected cart cleared after retry succeded")
	}
}

func TestSubmitPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		cart    func() *entity.Cart
		wantErr error
	}{
		{
			"no store selected",
			func() *entity.Cart {
				cart := entity.NewCart()
				cart.AddItem(entity.ProductInfo{ID: "p1", Name: "Harina", Price: decimal.New(10, 0), StockQuantity: 5}, 1)
				return cart
			},
			entity.ErrNoStoreSelected,
		},
		{
			"empty cart",
			func() *entity.Cart {
				cart := entity.NewCart()
				cart.SetStore("store-1", "Tienda Centro")
				return cart
			},
			entity.ErrEmptyCart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeOrderCreator{}
			uc := NewSubmitOrderUseCase(creator)

			_, err := uc.Execute(context.Background(), "collector-1", tt.cart(), "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			// Las precondiciones fallan sin llamada externa
			if creator.callCount() != 0 {
				t.Errorf("expected no external calls, got %d", creator.callCount())
			}
		})
	}
}

func TestSubmitInFlightGuard(t *testing.T) {
	block := make(chan struct{})
	creator := &fakeOrderCreator{
		receipt: &port.OrderReceipt{OrderID: "o1", OrderNumber: "ORD-20260829-000003"},
		block:   block,
	}
	uc := NewSubmitOrderUseCase(creator)
	cart := loadedCart()

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), "collector-1", cart, "")
		firstDone <- err
	}()

	// Esperar a que el primer submit esté dentro de la llamada externa
	for creator.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	_, err := uc.Execute(context.Background(), "collector-1", cart, "")
	if !errors.Is(err, entity.ErrSubmissionInFlight) {
		t.Errorf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	// Sólo la primera llamada llegó al colaborador
	if creator.callCount() != 1 {
		t.Errorf("expected 1 external call, got %d", creator.callCount())
	}
}

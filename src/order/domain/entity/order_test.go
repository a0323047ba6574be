package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testItems(t *testing.T) []OrderItem {
	t.Helper()
	item1, err := NewOrderItem(uuid.New(), "Harina", decimal.RequireFromString("12.50"), 3)
	if err != nil {
		t.Fatal(err)
	}
	item2, err := NewOrderItem(uuid.New(), "Azúcar", decimal.RequireFromString("8.00"), 2)
	if err != nil {
		t.Fatal(err)
	}
	return []OrderItem{*item1, *item2}
}

func TestNewOrderComputesAmounts(t *testing.T) {
	order, err := NewOrder(uuid.New(), uuid.New(), "", testItems(t), decimal.RequireFromString("0.12"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != OrderStatusPending {
		t.Errorf("expected pending, got %s", order.Status)
	}
	if got := order.Subtotal.String(); got != "53.5" {
		t.Errorf("expected subtotal 53.5, got %s", got)
	}
	if got := order.TaxAmount.String(); got != "6.42" {
		t.Errorf("expected tax 6.42, got %s", got)
	}
	if got := order.TotalAmount.String(); got != "59.92" {
		t.Errorf("expected total 59.92, got %s", got)
	}
	for _, item := range order.Items {
		if item.OrderID != order.ID {
			t.Error("expected order ID assigned to items")
		}
	}
}

func TestNewOrderValidation(t *testing.T) {
	items := testItems(t)

	if _, err := NewOrder(uuid.Nil, uuid.New(), "", items, decimal.Zero); err != ErrCollectorIDRequired {
		t.Errorf("expected ErrCollectorIDRequired, got %v", err)
	}
	if _, err := NewOrder(uuid.New(), uuid.Nil, "", items, decimal.Zero); err != ErrStoreIDRequired {
		t.Errorf("expected ErrStoreIDRequired, got %v", err)
	}
	if _, err := NewOrder(uuid.New(), uuid.New(), "", nil, decimal.Zero); err != ErrOrderMustHaveItems {
		t.Errorf("expected ErrOrderMustHaveItems, got %v", err)
	}
}

func TestNewOrderItemValidation(t *testing.T) {
	if _, err := NewOrderItem(uuid.Nil, "Harina", decimal.Zero, 1); err != ErrProductIDRequired {
		t.Errorf("expected ErrProductIDRequired, got %v", err)
	}
	if _, err := NewOrderItem(uuid.New(), "Harina", decimal.Zero, 0); err != ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusProcessing, false},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusConfirmed, OrderStatusProcessing, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusProcessing, OrderStatusCompleted, true},
		{OrderStatusProcessing, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			order := &Order{Status: tt.from}
			err := order.TransitionTo(tt.to)
			if tt.ok && err != nil {
				t.Errorf("expected transition allowed, got %v", err)
			}
			if !tt.ok {
				if err != ErrInvalidTransition {
					t.Errorf("expected ErrInvalidTransition, got %v", err)
				}
				if order.Status != tt.from {
					t.Errorf("status changed on rejected transition: %s", order.Status)
				}
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	if _, err := ParseOrderStatus("confirmed"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseOrderStatus("shipped"); err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

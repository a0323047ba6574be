package session

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gauciv/pos-app/src/cart/domain/entity"
)

func TestGetOrCreateReturnsSameCart(t *testing.T) {
	registry := NewCartRegistry()

	cart1 := registry.GetOrCreate("collector-1")
	cart2 := registry.GetOrCreate("collector-1")

	if cart1 != cart2 {
		t.Error("expected the same cart instance for the same collector")
	}
	if registry.Len() != 1 {
		t.Errorf("expected 1 cart, got %d", registry.Len())
	}
}

func TestCartsAreIsolatedPerCollector(t *testing.T) {
	registry := NewCartRegistry()

	cartA := registry.GetOrCreate("collector-a")
	cartB := registry.GetOrCreate("collector-b")

	cartA.AddItem(entity.ProductInfo{ID: "p1", Name: "Harina", Price: decimal.New(10, 0), StockQuantity: 5}, 2)

	if !cartB.IsEmpty() {
		t.Error("expected collector-b cart to be unaffected")
	}
}

func TestDropDiscardsCart(t *testing.T) {
	registry := NewCartRegistry()

	cart := registry.GetOrCreate("collector-1")
	cart.AddItem(entity.ProductInfo{ID: "p1", Name: "Harina", Price: decimal.New(10, 0), StockQuantity: 5}, 2)

	registry.Drop("collector-1")

	if registry.Len() != 0 {
		t.Errorf("expected empty registry, got %d", registry.Len())
	}
	if !registry.GetOrCreate("collector-1").IsEmpty() {
		t.Error("expected a fresh cart after drop")
	}
}

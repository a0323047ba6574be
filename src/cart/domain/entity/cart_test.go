package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func productInfo(id, name, price string, stock int) ProductInfo {
	return ProductInfo{
		ID:            id,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
}

func TestAddItemNewLine(t *testing.T) {
	cart := NewCart()

	if !cart.AddItem(productInfo("p1", "Harina", "12.50", 10), 3) {
		t.Fatal("expected add to succeed")
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", items[0].Quantity)
	}
	if got := items[0].LineTotal.String(); got != "37.5" {
		t.Errorf("expected line total 37.5, got %s", got)
	}
	if items[0].StockCeiling != 10 {
		t.Errorf("expected stock ceiling 10, got %d", items[0].StockCeiling)
	}
}

func TestAddItemRejectsOverflow(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		incoming int
		stock    int
		ok       bool
	}{
		{"exactly at stock", 0, 5, 5, true},
		{"over stock on first add", 0, 6, 5, false},
		{"merge within stock", 3, 2, 5, true},
		{"merge exceeds stock", 3, 3, 5, false},
		{"zero quantity", 0, 0, 5, false},
		{"negative quantity", 0, -1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			if tt.existing > 0 {
				if !cart.AddItem(productInfo("p1", "Harina", "10", tt.stock), tt.existing) {
					t.Fatal("setup add failed")
				}
			}

			got := cart.AddItem(productInfo("p1", "Harina", "10", tt.stock), tt.incoming)
			if got != tt.ok {
				t.Errorf("AddItem = %v, want %v", got, tt.ok)
			}

			// Un rechazo no debe modificar el carrito
			if !tt.ok {
				wantQty := tt.existing
				gotQty := cart.ItemCount()
				if gotQty != wantQty {
					t.Errorf("cart modified on reject: itemCount = %d, want %d", gotQty, wantQty)
				}
			}
		})
	}
}

func TestAddItemMergeRefreshesCeiling(t *testing.T) {
	cart := NewCart()

	cart.AddItem(productInfo("p1", "Harina", "10", 10), 2)
	// El catálogo ahora reporta menos stock
	if !cart.AddItem(productInfo("p1", "Harina", "10", 6), 2) {
		t.Fatal("expected merge to succeed")
	}

	items := cart.Items()
	if items[0].Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", items[0].Quantity)
	}
	if items[0].StockCeiling != 6 {
		t.Errorf("expected refreshed ceiling 6, got %d", items[0].StockCeiling)
	}
}

func TestUpdateQuantityClampsToCeiling(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productInfo("p1", "Harina", "4.75", 5), 2)

	cart.UpdateQuantity("p1", 50)

	items := cart.Items()
	if items[0].Quantity != 5 {
		t.Errorf("expected clamp to 5, got %d", items[0].Quantity)
	}
	if got := items[0].LineTotal.String(); got != "23.75" {
		t.Errorf("expected line total 23.75, got %s", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productInfo("p1", "Harina", "10", 5), 2)
	cart.AddItem(productInfo("p2", "Azúcar", "8", 5), 1)

	cart.UpdateQuantity("p1", 0)

	items := cart.Items()
	if len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", items)
	}

	cart.UpdateQuantity("p2", -3)
	if !cart.IsEmpty() {
		t.Error("expected empty cart after negative quantity update")
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productInfo("p1", "Harina", "10", 5), 2)

	cart.RemoveItem("p1")
	cart.RemoveItem("p1")
	cart.RemoveItem("unknown")

	if !cart.IsEmpty() {
		t.Error("expected empty cart")
	}
}

func TestClearResetsItemsAndStore(t *testing.T) {
	cart := NewCart()
	cart.SetStore("s1", "Tienda Centro")
	cart.AddItem(productInfo("p1", "Harina", "10", 5), 2)

	cart.Clear()

	if !cart.IsEmpty() {
		t.Error("expected empty cart after clear")
	}
	storeID, storeName := cart.Store()
	if storeID != "" || storeName != "" {
		t.Errorf("expected store unbound, got %q %q", storeID, storeName)
	}
}

func TestSetStoreKeepsItems(t *testing.T) {
	cart := NewCart()
	cart.SetStore("s1", "Tienda Centro")
	cart.AddItem(productInfo("p1", "Harina", "10", 5), 2)

	cart.SetStore("s2", "Tienda Norte")

	if cart.ItemCount() != 2 {
		t.Error("expected items preserved on store change")
	}
	storeID, _ := cart.Store()
	if storeID != "s2" {
		t.Errorf("expected store s2, got %s", storeID)
	}
}

func TestSubtotalAndItemCount(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productInfo("p1", "Harina", "12.50", 10), 3)
	cart.AddItem(productInfo("p2", "Azúcar", "0.10", 100), 7)

	if got := cart.Subtotal().String(); got != "38.2" {
		t.Errorf("expected subtotal 38.2, got %s", got)
	}
	if got := cart.ItemCount(); got != 10 {
		t.Errorf("expected item count 10, got %d", got)
	}
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	cart := NewCart()
	ids := []string{"p3", "p1", "p2"}
	for _, id := range ids {
		cart.AddItem(productInfo(id, "Prod "+id, "1", 10), 1)
	}

	// Un merge no cambia la posición de la línea
	cart.AddItem(productInfo("p1", "Prod p1", "1", 10), 1)

	items := cart.Items()
	for i, id := range ids {
		if items[i].ProductID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].ProductID)
		}
	}
}

func TestBeginSubmitGuard(t *testing.T) {
	cart := NewCart()

	if !cart.BeginSubmit() {
		t.Fatal("expected first BeginSubmit to succeed")
	}
	if cart.BeginSubmit() {
		t.Error("expected second BeginSubmit to fail while in flight")
	}

	cart.EndSubmit()
	if !cart.BeginSubmit() {
		t.Error("expected BeginSubmit to succeed after EndSubmit")
	}
}

package entity

import "testing"

func TestNewStore(t *testing.T) {
	store, err := NewStore("  Tienda Centro  ", "Av. Siempre Viva 123", "María", "555-0101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Name != "Tienda Centro" {
		t.Errorf("expected trimmed name, got %q", store.Name)
	}
	if !store.IsActive {
		t.Error("new store must be active")
	}
}

func TestNewStoreRequiresName(t *testing.T) {
	if _, err := NewStore("   ", "", "", ""); err != ErrStoreNameRequired {
		t.Errorf("expected ErrStoreNameRequired, got %v", err)
	}
}

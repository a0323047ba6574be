package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		price       string
		stock       int
		wantErr     error
	}{
		{"valid", "Harina", "12.50", 10, nil},
		{"zero price allowed", "Muestra", "0", 5, nil},
		{"zero stock allowed", "Harina", "12.50", 0, nil},
		{"empty name", "", "12.50", 10, ErrProductNameRequired},
		{"negative price", "Harina", "-1", 10, ErrInvalidPrice},
		{"negative stock", "Harina", "12.50", -1, ErrInvalidStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.productName, "", "", nil, decimal.RequireFromString(tt.price), tt.stock, "", "")
			if err != tt.wantErr {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err == nil {
				if !product.IsActive {
					t.Error("new product must be active")
				}
				if product.Unit != "unit" {
					t.Errorf("expected default unit, got %q", product.Unit)
				}
			}
		})
	}
}

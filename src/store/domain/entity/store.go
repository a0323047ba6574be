package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store representa una tienda destino de los pedidos de campo
type Store struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewStore crea una tienda activa validando el nombre
func NewStore(name, address, contactName, contactPhone string) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrStoreNameRequired
	}

	now := time.Now()
	return &Store{
		ID:           uuid.New(),
		Name:         name,
		Address:      address,
		ContactName:  contactName,
		ContactPhone: contactPhone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

package entity

import "errors"

// Errores de dominio del módulo de tiendas
var (
	ErrStoreNameRequired = errors.New("store name is required")
	ErrStoreNotFound     = errors.New("store not found")
)

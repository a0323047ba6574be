package session

import (
	"sync"

	"github.com/gauciv/pos-app/src/cart/domain/entity"
)

// CartRegistry mantiene el carrito en memoria de cada sesión de cobrador.
// Cada carrito es propiedad exclusiva de una sesión: se crea en el primer
// acceso y se destruye en el logout. Nunca se persiste.
type CartRegistry struct {
	carts map[string]*entity.Cart
	mu    sync.RWMutex
}

// NewCartRegistry crea un registro vacío de carritos
func NewCartRegistry() *CartRegistry {
	return &CartRegistry{
		carts: make(map[string]*entity.Cart),
	}
}

// GetOrCreate retorna el carrito de la sesión del cobrador, creándolo vacío
// si es el primer acceso.
func (r *CartRegistry) GetOrCreate(collectorID string) *entity.Cart {
	r.mu.RLock()
	cart, ok := r.carts[collectorID]
	r.mu.RUnlock()
	if ok {
		return cart
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cart, ok := r.carts[collectorID]; ok {
		return cart
	}
	cart = entity.NewCart()
	r.carts[collectorID] = cart
	return cart
}

// Drop descarta el carrito de la sesión (logout). El pedido en progreso se
// pierde, por diseño.
func (r *CartRegistry) Drop(collectorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, collectorID)
}

// Len retorna la cantidad de sesiones con carrito activo.
func (r *CartRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}

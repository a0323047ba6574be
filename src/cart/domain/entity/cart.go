package entity

import (
	"sync"

	"github.com/shopspring/decimal"
)

// ProductInfo es la vista del catálogo que consume el carrito al agregar items.
// El carrito confía en los valores provistos al momento de la llamada; no
// re-valida contra el catálogo vivo.
type ProductInfo struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	StockQuantity int
}

// LineItem representa una línea del carrito con su total derivado.
// LineTotal se recalcula en cada mutación, nunca se permite que quede desfasado.
type LineItem struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	StockCeiling int             `json:"stock_quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// Cart es el aggregate de la orden-en-progreso de un cobrador (Aggregate Root).
// Único dueño del binding de tienda y del conjunto de items; toda mutación es
// total: o se aplica completa o se rechaza sin cambio parcial de estado.
//
// Invariantes:
//   - 1 <= Quantity <= StockCeiling para todo LineItem
//   - LineTotal == Quantity * UnitPrice siempre
//   - a lo sumo UNA tienda asociada a la vez
//
// Nota de producto: SetStore sobre un carrito con items NO limpia los items
// existentes (re-binding deliberado del contexto de tienda). Mezclar items
// agregados bajo contextos de tienda distintos es un riesgo latente conocido.
type Cart struct {
	mu         sync.Mutex
	storeID    string
	storeName  string
	items      []LineItem // orden de inserción preservado para el listado de UI
	submitting bool
}

// NewCart crea un carrito vacío. Vive en memoria por sesión de cobrador;
// un restart o logout lo pierde.
func NewCart() *Cart {
	return &Cart{}
}

// SetStore sobreescribe el binding de tienda de forma incondicional.
// ID y nombre se setean atómicamente juntos. No toca los items existentes.
func (c *Cart) SetStore(id, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.storeID = id
	c.storeName = name
}

// Store retorna el binding actual de tienda. ID vacío significa sin tienda.
func (c *Cart) Store() (id, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storeID, c.storeName
}

// AddItem agrega quantity unidades del producto al carrito.
// Retorna false (carrito sin cambios) si la cantidad solicitada, o la suma con
// la cantidad existente, excede el stock disponible: agregar es una acción
// incremental y un clamp silencioso tergiversaría lo que se agregó.
func (c *Cart) AddItem(p ProductInfo, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		return false
	}

	for i := range c.items {
		if c.items[i].ProductID != p.ID {
			continue
		}
		newQty := c.items[i].Quantity + quantity
		if newQty > p.StockQuantity {
			// Rechazo: la cantidad existente se preserva, no se clampea
			return false
		}
		c.items[i].Quantity = newQty
		c.items[i].StockCeiling = p.StockQuantity
		c.items[i].LineTotal = c.items[i].UnitPrice.Mul(decimal.NewFromInt(int64(newQty)))
		return true
	}

	if quantity > p.StockQuantity {
		return false
	}

	c.items = append(c.items, LineItem{
		ProductID:    p.ID,
		ProductName:  p.Name,
		UnitPrice:    p.Price,
		Quantity:     quantity,
		StockCeiling: p.StockQuantity,
		LineTotal:    p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	})
	return true
}

// UpdateQuantity setea la cantidad absoluta de un item.
// A diferencia de AddItem, acá SÍ se clampea (hacia abajo, al stock conocido):
// representa una intención "setear a" donde el máximo visible es el
// comportamiento esperable. quantity <= 0 equivale a RemoveItem.
// No-op si el producto no está en el carrito.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if quantity > c.items[i].StockCeiling {
			quantity = c.items[i].StockCeiling
		}
		c.items[i].Quantity = quantity
		c.items[i].LineTotal = c.items[i].UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		return
	}
}

// RemoveItem elimina la línea del producto si existe; no-op si no está.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear vacía los items y desasocia la tienda atómicamente (ambos o ninguno).
// Se invoca sólo en cancelación explícita o tras un submit exitoso.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.storeID = ""
	c.storeName = ""
}

// Items retorna una copia de las líneas en orden de inserción.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal suma los line totals. Función pura del estado actual, recalculada
// on demand para que nunca pueda quedar stale.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum := decimal.Zero
	for i := range c.items {
		sum = sum.Add(c.items[i].LineTotal)
	}
	return sum
}

// ItemCount suma las cantidades de todas las líneas (NO la cantidad de
// productos distintos). 0 para carrito vacío.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// BeginSubmit marca el carrito como en-submit. Retorna false si ya hay un
// submit en vuelo: un segundo submitOrder concurrente sobre el mismo snapshot
// jamás debe producir dos órdenes.
func (c *Cart) BeginSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

// EndSubmit libera la marca de submit en vuelo.
func (c *Cart) EndSubmit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
}

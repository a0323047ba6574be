package port

import "context"

// OrderItemRef es el par {producto, cantidad} que viaja en el snapshot de
// submit. Precio y nombre NO se envían: el servicio de órdenes es la fuente de
// verdad del pricing al momento de crear la orden; los valores capturados en
// el carrito son sólo para display.
type OrderItemRef struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest es el snapshot inmutable que el coordinador de submit construye
// a partir del carrito y entrega al colaborador de creación de órdenes.
type OrderRequest struct {
	CollectorID string         `json:"collector_id"`
	StoreID     string         `json:"store_id"`
	Notes       string         `json:"notes,omitempty"`
	Items       []OrderItemRef `json:"items"`
}

// OrderReceipt son los identificadores opacos que retorna el colaborador
// externo cuando la orden fue creada con éxito.
type OrderReceipt struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// OrderCreator es el colaborador externo de creación de órdenes.
// Cualquier respuesta no exitosa (rechazo de negocio, red, timeout) se trata
// uniformemente como "submission failed, carrito preservado".
type OrderCreator interface {
	CreateOrder(ctx context.Context, req *OrderRequest) (*OrderReceipt, error)
}

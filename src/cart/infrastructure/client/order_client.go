package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/gauciv/pos-app/src/cart/domain/port"
)

// OrderServiceClient implementa port.OrderCreator contra la API de órdenes.
// El timeout del cliente y el circuit breaker tratan cualquier demora o caída
// del servicio como un fallo de submit: el carrito del llamador se preserva,
// nunca se asume éxito implícito.
type OrderServiceClient struct {
	httpClient *resty.Client
	breaker    *gobreaker.CircuitBreaker
	baseURL    string
}

type orderErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// NewOrderServiceClient crea una nueva instancia del cliente de órdenes
func NewOrderServiceClient() *OrderServiceClient {
	baseURL := os.Getenv("ORDERS_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080" // Default: la propia API en despliegue monolítico
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "orders-api",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("⚡ Circuit breaker %s: %s → %s", name, from.String(), to.String())
		},
	})

	return &OrderServiceClient{
		httpClient: resty.New().
			SetTimeout(10 * time.Second).
			SetRetryCount(0), // Sin reintentos automáticos: un submit es one-shot
		breaker: breaker,
		baseURL: baseURL,
	}
}

// CreateOrder invoca POST /api/v1/orders exactamente una vez con el snapshot.
func (c *OrderServiceClient) CreateOrder(ctx context.Context, req *port.OrderRequest) (*port.OrderReceipt, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doCreateOrder(ctx, req)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("orders-api unavailable: %w", err)
		}
		return nil, err
	}
	return result.(*port.OrderReceipt), nil
}

func (c *OrderServiceClient) doCreateOrder(ctx context.Context, req *port.OrderRequest) (*port.OrderReceipt, error) {
	var receipt port.OrderReceipt

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Collector-ID", req.CollectorID).
		SetHeader("X-User-Role", "collector").
		SetBody(map[string]interface{}{
			"store_id": req.StoreID,
			"notes":    req.Notes,
			"items":    req.Items,
		}).
		SetResult(&receipt).
		Post(c.baseURL + "/api/v1/orders")

	if err != nil {
		return nil, fmt.Errorf("error calling orders-api: %w", err)
	}

	if resp.IsError() {
		var body orderErrorBody
		if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil && body.Error != "" {
			return nil, fmt.Errorf("orders-api rejected order (status %d): %s", resp.StatusCode(), body.Error)
		}
		return nil, fmt.Errorf("orders-api returned status %d", resp.StatusCode())
	}

	if receipt.OrderID == "" {
		return nil, fmt.Errorf("orders-api returned an empty order_id")
	}

	return &receipt, nil
}

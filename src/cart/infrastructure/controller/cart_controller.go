package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauciv/pos-app/src/cart/application/request"
	"github.com/gauciv/pos-app/src/cart/application/response"
	"github.com/gauciv/pos-app/src/cart/application/usecase"
	"github.com/gauciv/pos-app/src/cart/domain/entity"
	"github.com/gauciv/pos-app/src/cart/domain/port"
	"github.com/gauciv/pos-app/src/cart/infrastructure/client"
	"github.com/gauciv/pos-app/src/cart/infrastructure/session"
	"github.com/gauciv/pos-app/src/shared/infrastructure/middleware"
)

// CartController maneja las peticiones HTTP del carrito de pedido.
// Cada recolector opera sobre su propio carrito en memoria.
type CartController struct {
	registry      *session.CartRegistry
	catalog       port.ProductCatalog
	submitOrderUC *usecase.SubmitOrderUseCase
}

// NewCartController crea una nueva instancia del controlador
func NewCartController(
	registry *session.CartRegistry,
	catalog port.ProductCatalog,
	submitOrderUC *usecase.SubmitOrderUseCase,
) *CartController {
	return &CartController{
		registry:      registry,
		catalog:       catalog,
		submitOrderUC: submitOrderUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CartController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	cart.Use(middleware.RequireIdentity())
	{
		cart.GET("", c.GetCart)
		cart.DELETE("", c.ClearCart)
		cart.PUT("/store", c.SetStore)
		cart.POST("/items", c.AddItem)
		cart.PATCH("/items/:product_id", c.UpdateQuantity)
		cart.DELETE("/items/:product_id", c.RemoveItem)
		cart.POST("/submit", c.SubmitOrder)
		cart.DELETE("/session", c.DropSession)
	}

	log.Println("Rutas Cart disponibles:")
	log.Println("  GET    /api/v1/cart")
	log.Println("  DELETE /api/v1/cart")
	log.Println("  PUT    /api/v1/cart/store")
	log.Println("  POST   /api/v1/cart/items")
	log.Println("  PATCH  /api/v1/cart/items/:product_id")
	log.Println("  DELETE /api/v1/cart/items/:product_id")
	log.Println("  POST   /api/v1/cart/submit")
	log.Println("  DELETE /api/v1/cart/session")
}

func (c *CartController) cartFor(ctx *gin.Context) *entity.Cart {
	return c.registry.GetOrCreate(middleware.CollectorID(ctx))
}

// GetCart devuelve el estado actual del carrito del recolector
func (c *CartController) GetCart(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.NewCartResponse(c.cartFor(ctx)))
}

// SetStore asocia el carrito a una tienda destino.
// Los ítems ya cargados se conservan.
func (c *CartController) SetStore(ctx *gin.Context) {
	var req request.SetStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cart := c.cartFor(ctx)
	cart.SetStore(req.StoreID, req.StoreName)

	ctx.JSON(http.StatusOK, response.NewCartResponse(cart))
}

// AddItem agrega un producto del catálogo al carrito.
// Si la cantidad resultante supera el stock disponible, la operación
// se rechaza y el carrito queda intacto.
func (c *CartController) AddItem(ctx *gin.Context) {
	if c.catalog == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	product, err := c.catalog.GetProduct(ctx.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, client.ErrProductUnavailable) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error fetching product %s: %v", req.ProductID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cart := c.cartFor(ctx)
	if !cart.AddItem(*product, quantity) {
		ctx.JSON(http.StatusConflict, gin.H{
			"error": "Requested quantity exceeds available stock",
		})
		return
	}

	ctx.JSON(http.StatusOK, response.NewCartResponse(cart))
}

// UpdateQuantity setea la cantidad absoluta de una línea.
// Cantidad 0 o negativa elimina la línea; cantidades que superan
// el stock registrado se recortan al tope.
func (c *CartController) UpdateQuantity(ctx *gin.Context) {
	var req request.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cart := c.cartFor(ctx)
	cart.UpdateQuantity(ctx.Param("product_id"), req.Quantity)

	ctx.JSON(http.StatusOK, response.NewCartResponse(cart))
}

// RemoveItem elimina una línea del carrito (idempotente)
func (c *CartController) RemoveItem(ctx *gin.Context) {
	cart := c.cartFor(ctx)
	cart.RemoveItem(ctx.Param("product_id"))

	ctx.JSON(http.StatusOK, response.NewCartResponse(cart))
}

// ClearCart vacía el carrito y desasocia la tienda en un solo paso
func (c *CartController) ClearCart(ctx *gin.Context) {
	cart := c.cartFor(ctx)
	cart.Clear()

	ctx.JSON(http.StatusOK, response.NewCartResponse(cart))
}

// SubmitOrder envía el carrito como pedido.
// El carrito se vacía únicamente si el pedido fue confirmado.
func (c *CartController) SubmitOrder(ctx *gin.Context) {
	if c.submitOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order submission not available",
		})
		return
	}

	var req request.SubmitOrderRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	collectorID := middleware.CollectorID(ctx)
	cart := c.cartFor(ctx)

	resp, err := c.submitOrderUC.Execute(ctx.Request.Context(), collectorID, cart, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNoStoreSelected):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "No store selected"})
		case errors.Is(err, entity.ErrEmptyCart):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, entity.ErrSubmissionInFlight):
			ctx.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
		default:
			log.Printf("Error submitting order for collector %s: %v", collectorID, err)
			ctx.JSON(http.StatusBadGateway, gin.H{
				"error": "Order could not be created, cart preserved",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// DropSession descarta el carrito del recolector (logout)
func (c *CartController) DropSession(ctx *gin.Context) {
	c.registry.Drop(middleware.CollectorID(ctx))
	ctx.JSON(http.StatusOK, gin.H{"message": "Cart session discarded"})
}

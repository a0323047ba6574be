package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogentity "github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/order/application/request"
	"github.com/gauciv/pos-app/src/order/application/usecase"
	"github.com/gauciv/pos-app/src/order/domain/entity"
	"github.com/gauciv/pos-app/src/order/domain/port"
	"github.com/gauciv/pos-app/src/shared/infrastructure/middleware"
)

// OrderController maneja las peticiones HTTP para pedidos
type OrderController struct {
	createOrderUC  *usecase.CreateOrderUseCase
	listOrdersUC   *usecase.ListOrdersUseCase
	getOrderUC     *usecase.GetOrderUseCase
	updateStatusUC *usecase.UpdateOrderStatusUseCase
	dailyReportUC  *usecase.DailyReportUseCase
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	createOrderUC *usecase.CreateOrderUseCase,
	listOrdersUC *usecase.ListOrdersUseCase,
	getOrderUC *usecase.GetOrderUseCase,
	updateStatusUC *usecase.UpdateOrderStatusUseCase,
	dailyReportUC *usecase.DailyReportUseCase,
) *OrderController {
	return &OrderController{
		createOrderUC:  createOrderUC,
		listOrdersUC:   listOrdersUC,
		getOrderUC:     getOrderUC,
		updateStatusUC: updateStatusUC,
		dailyReportUC:  dailyReportUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	orders.Use(middleware.RequireIdentity())
	{
		orders.POST("", c.CreateOrder)
		orders.GET("", c.ListOrders)
		orders.GET("/:order_id", c.GetOrder)

		admin := orders.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.PATCH("/:order_id/status", c.UpdateStatus)
		}
	}

	reports := router.Group("/reports")
	reports.Use(middleware.RequireIdentity(), middleware.RequireAdmin())
	{
		reports.GET("/orders/daily", c.DailyReport)
	}

	log.Println("Rutas Order disponibles:")
	log.Println("  POST   /api/v1/orders")
	log.Println("  GET    /api/v1/orders")
	log.Println("  GET    /api/v1/orders/:order_id")
	log.Println("  PATCH  /api/v1/orders/:order_id/status")
	log.Println("  GET    /api/v1/reports/orders/daily")
}

// CreateOrder crea un pedido descontando stock del catálogo
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	if c.createOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order creation not available (database not configured)",
		})
		return
	}

	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	collectorID := uuid.MustParse(middleware.CollectorID(ctx))

	resp, err := c.createOrderUC.Execute(ctx.Request.Context(), collectorID, &req)
	if err != nil {
		log.Printf("Error creating order: %v", err)

		if errors.Is(err, catalogentity.ErrInsufficientStock) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":   "Insufficient stock",
				"details": err.Error(),
			})
			return
		}
		if errors.Is(err, catalogentity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error":   "Product not found",
				"details": err.Error(),
			})
			return
		}
		if errors.Is(err, entity.ErrStoreIDRequired) ||
			errors.Is(err, entity.ErrProductIDRequired) ||
			errors.Is(err, entity.ErrInvalidQuantity) ||
			errors.Is(err, entity.ErrOrderMustHaveItems) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error creating order",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListOrders listado paginado; el recolector sólo ve sus pedidos
func (c *OrderController) ListOrders(ctx *gin.Context) {
	if c.listOrdersUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order listing not available (database not configured)",
		})
		return
	}

	var filter port.ListOrdersFilter

	if middleware.IsAdmin(ctx) {
		if raw := ctx.Query("collector_id"); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collector_id format"})
				return
			}
			filter.CollectorID = &parsed
		}
	} else {
		own := uuid.MustParse(middleware.CollectorID(ctx))
		filter.CollectorID = &own
	}

	if raw := ctx.Query("store_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store_id format"})
			return
		}
		filter.StoreID = &parsed
	}

	if raw := ctx.Query("status"); raw != "" {
		status, err := entity.ParseOrderStatus(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		filter.Status = &status
	}

	page := queryInt(ctx, "page", 1)
	pageSize := queryInt(ctx, "page_size", 20)

	resp, err := c.listOrdersUC.Execute(ctx.Request.Context(), filter, page, pageSize)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error listing orders",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetOrder obtiene un pedido por ID con control de pertenencia
func (c *OrderController) GetOrder(ctx *gin.Context) {
	if c.getOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order retrieval not available (database not configured)",
		})
		return
	}

	orderID, err := uuid.Parse(ctx.Param("order_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_id format"})
		return
	}

	requesterID := uuid.MustParse(middleware.CollectorID(ctx))

	order, err := c.getOrderUC.Execute(ctx.Request.Context(), requesterID, middleware.IsAdmin(ctx), orderID)
	if err != nil {
		if errors.Is(err, entity.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if errors.Is(err, entity.ErrNotOrderOwner) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Order belongs to another collector"})
			return
		}
		log.Printf("Error getting order: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error getting order",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// UpdateStatus avanza o cancela un pedido (admin)
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	if c.updateStatusUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order status update not available (database not configured)",
		})
		return
	}

	orderID, err := uuid.Parse(ctx.Param("order_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_id format"})
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	performedBy := uuid.MustParse(middleware.CollectorID(ctx))

	order, err := c.updateStatusUC.Execute(ctx.Request.Context(), performedBy, orderID, req.Status)
	if err != nil {
		if errors.Is(err, entity.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if errors.Is(err, entity.ErrInvalidStatus) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		if errors.Is(err, entity.ErrInvalidTransition) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":   "Status transition not allowed",
				"details": err.Error(),
			})
			return
		}
		log.Printf("Error updating order status: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error updating order status",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       string(order.Status),
	})
}

// DailyReport reporte diario de pedidos (admin)
func (c *OrderController) DailyReport(ctx *gin.Context) {
	if c.dailyReportUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Reports not available (database not configured)",
		})
		return
	}

	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date query param is required (YYYY-MM-DD)"})
		return
	}

	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		log.Printf("Error generating daily report: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Error generating daily report",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

func queryInt(ctx *gin.Context, name string, defaultValue int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/catalog/application/request"
	"github.com/gauciv/pos-app/src/catalog/application/usecase"
	"github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/domain/port"
	"github.com/gauciv/pos-app/src/shared/infrastructure/middleware"
)

// ProductController maneja las peticiones HTTP para el catálogo
type ProductController struct {
	listProductsUC  *usecase.ListProductsUseCase
	getProductUC    *usecase.GetProductUseCase
	createProductUC *usecase.CreateProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
	adjustStockUC   *usecase.AdjustStockUseCase
	listLogsUC      *usecase.ListInventoryLogsUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	listProductsUC *usecase.ListProductsUseCase,
	getProductUC *usecase.GetProductUseCase,
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
	adjustStockUC *usecase.AdjustStockUseCase,
	listLogsUC *usecase.ListInventoryLogsUseCase,
) *ProductController {
	return &ProductController{
		listProductsUC:  listProductsUC,
		getProductUC:    getProductUC,
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
		adjustStockUC:   adjustStockUC,
		listLogsUC:      listLogsUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	products.Use(middleware.RequireIdentity())
	{
		products.GET("", c.ListProducts)
		products.GET("/:product_id", c.GetProduct)

		admin := products.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", c.CreateProduct)
			admin.PATCH("/:product_id", c.UpdateProduct)
			admin.DELETE("/:product_id", c.DeleteProduct)
			admin.POST("/:product_id/adjust-stock", c.AdjustStock)
			admin.GET("/:product_id/inventory-logs", c.ListInventoryLogs)
		}
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products")
	log.Println("  PATCH  /api/v1/products/:product_id")
	log.Println("  DELETE /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products/:product_id/adjust-stock")
	log.Println("  GET    /api/v1/products/:product_id/inventory-logs")
}

// ListProducts lista productos con búsqueda, filtro por categoría y paginación
func (c *ProductController) ListProducts(ctx *gin.Context) {
	if c.listProductsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	filter := port.ListProductsFilter{
		Search: ctx.Query("search"),
	}

	if categoryID := ctx.Query("category_id"); categoryID != "" {
		parsed, err := uuid.Parse(categoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id format"})
			return
		}
		filter.CategoryID = &parsed
	}

	// Sólo el admin puede ver productos dados de baja
	if ctx.Query("include_inactive") == "true" && middleware.IsAdmin(ctx) {
		filter.IncludeInactive = true
	}

	page := queryInt(ctx, "page", 1)
	pageSize := queryInt(ctx, "page_size", 50)

	resp, err := c.listProductsUC.Execute(ctx.Request.Context(), filter, page, pageSize)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetProduct obtiene un producto por ID
func (c *ProductController) GetProduct(ctx *gin.Context) {
	if c.getProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	product, err := c.getProductUC.Execute(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error getting product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// CreateProduct da de alta un producto (admin)
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	if c.createProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNameRequired) ||
			errors.Is(err, entity.ErrInvalidPrice) ||
			errors.Is(err, entity.ErrInvalidStock) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct actualización parcial de un producto (admin)
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	if c.updateProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := c.updateProductUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrProductNameRequired) ||
			errors.Is(err, entity.ErrInvalidPrice) ||
			errors.Is(err, entity.ErrInvalidStock) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct baja lógica de un producto (admin)
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	if c.deleteProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	if err := c.deleteProductUC.Execute(ctx.Request.Context(), productID); err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error deleting product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deactivated"})
}

// AdjustStock ajuste manual de inventario (admin)
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	if c.adjustStockUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	var req request.AdjustStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	performedBy := uuid.MustParse(middleware.CollectorID(ctx))

	product, err := c.adjustStockUC.Execute(ctx.Request.Context(), productID, performedBy, &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrInsufficientStock) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Adjustment would leave negative stock"})
			return
		}
		if errors.Is(err, entity.ErrReasonRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error adjusting stock: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// ListInventoryLogs movimientos de stock de un producto (admin)
func (c *ProductController) ListInventoryLogs(ctx *gin.Context) {
	if c.listLogsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	page := queryInt(ctx, "page", 1)
	pageSize := queryInt(ctx, "page_size", 50)

	resp, err := c.listLogsUC.Execute(ctx.Request.Context(), productID, page, pageSize)
	if err != nil {
		log.Printf("Error listing inventory logs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

func parseProductID(ctx *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return uuid.Nil, false
	}
	return productID, true
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

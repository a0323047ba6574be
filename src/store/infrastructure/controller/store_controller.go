package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/shared/infrastructure/middleware"
	"github.com/gauciv/pos-app/src/store/application/request"
	"github.com/gauciv/pos-app/src/store/application/usecase"
	"github.com/gauciv/pos-app/src/store/domain/entity"
)

// StoreController maneja las peticiones HTTP para tiendas
type StoreController struct {
	listStoresUC  *usecase.ListStoresUseCase
	getStoreUC    *usecase.GetStoreUseCase
	createStoreUC *usecase.CreateStoreUseCase
	updateStoreUC *usecase.UpdateStoreUseCase
	deleteStoreUC *usecase.DeleteStoreUseCase
}

// NewStoreController crea una nueva instancia del controlador
func NewStoreController(
	listStoresUC *usecase.ListStoresUseCase,
	getStoreUC *usecase.GetStoreUseCase,
	createStoreUC *usecase.CreateStoreUseCase,
	updateStoreUC *usecase.UpdateStoreUseCase,
	deleteStoreUC *usecase.DeleteStoreUseCase,
) *StoreController {
	return &StoreController{
		listStoresUC:  listStoresUC,
		getStoreUC:    getStoreUC,
		createStoreUC: createStoreUC,
		updateStoreUC: updateStoreUC,
		deleteStoreUC: deleteStoreUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *StoreController) RegisterRoutes(router *gin.RouterGroup) {
	stores := router.Group("/stores")
	stores.Use(middleware.RequireIdentity())
	{
		stores.GET("", c.ListStores)
		stores.GET("/:store_id", c.GetStore)

		admin := stores.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", c.CreateStore)
			admin.PATCH("/:store_id", c.UpdateStore)
			admin.DELETE("/:store_id", c.DeleteStore)
		}
	}

	log.Println("Rutas Store disponibles:")
	log.Println("  GET    /api/v1/stores")
	log.Println("  GET    /api/v1/stores/:store_id")
	log.Println("  POST   /api/v1/stores")
	log.Println("  PATCH  /api/v1/stores/:store_id")
	log.Println("  DELETE /api/v1/stores/:store_id")
}

// ListStores lista tiendas activas con búsqueda opcional por nombre
func (c *StoreController) ListStores(ctx *gin.Context) {
	if c.listStoresUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Stores not available (database not configured)",
		})
		return
	}

	includeInactive := ctx.Query("include_inactive") == "true" && middleware.IsAdmin(ctx)

	stores, err := c.listStoresUC.Execute(ctx.Request.Context(), ctx.Query("search"), includeInactive)
	if err != nil {
		log.Printf("Error listing stores: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       stores,
		"total_count": len(stores),
	})
}

// GetStore obtiene una tienda por ID
func (c *StoreController) GetStore(ctx *gin.Context) {
	if c.getStoreUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Stores not available (database not configured)",
		})
		return
	}

	storeID, ok := parseStoreID(ctx)
	if !ok {
		return
	}

	store, err := c.getStoreUC.Execute(ctx.Request.Context(), storeID)
	if err != nil {
		if errors.Is(err, entity.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		log.Printf("Error getting store: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, store)
}

// CreateStore da de alta una tienda (admin)
func (c *StoreController) CreateStore(ctx *gin.Context) {
	if c.createStoreUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Stores not available (database not configured)",
		})
		return
	}

	var req request.CreateStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	store, err := c.createStoreUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrStoreNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating store: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, store)
}

// UpdateStore actualización parcial de una tienda (admin)
func (c *StoreController) UpdateStore(ctx *gin.Context) {
	if c.updateStoreUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Stores not available (database not configured)",
		})
		return
	}

	storeID, ok := parseStoreID(ctx)
	if !ok {
		return
	}

	var req request.UpdateStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	store, err := c.updateStoreUC.Execute(ctx.Request.Context(), storeID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		if errors.Is(err, entity.ErrStoreNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating store: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, store)
}

// DeleteStore baja lógica de una tienda (admin)
func (c *StoreController) DeleteStore(ctx *gin.Context) {
	if c.deleteStoreUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Stores not available (database not configured)",
		})
		return
	}

	storeID, ok := parseStoreID(ctx)
	if !ok {
		return
	}

	if err := c.deleteStoreUC.Execute(ctx.Request.Context(), storeID); err != nil {
		if errors.Is(err, entity.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		log.Printf("Error deleting store: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Store deactivated"})
}

func parseStoreID(ctx *gin.Context) (uuid.UUID, bool) {
	storeID, err := uuid.Parse(ctx.Param("store_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store_id format"})
		return uuid.Nil, false
	}
	return storeID, true
}

package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/activation/application/request"
	"github.com/gauciv/pos-app/src/activation/application/usecase"
	"github.com/gauciv/pos-app/src/activation/domain/entity"
	"github.com/gauciv/pos-app/src/shared/infrastructure/middleware"
)

// ActivationController maneja las peticiones HTTP de activación de dispositivos
type ActivationController struct {
	generateCodeUC   *usecase.GenerateCodeUseCase
	activateDeviceUC *usecase.ActivateDeviceUseCase
}

// NewActivationController crea una nueva instancia del controlador
func NewActivationController(
	generateCodeUC *usecase.GenerateCodeUseCase,
	activateDeviceUC *usecase.ActivateDeviceUseCase,
) *ActivationController {
	return &ActivationController{
		generateCodeUC:   generateCodeUC,
		activateDeviceUC: activateDeviceUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
// El canje del código es público: el dispositivo todavía no tiene identidad.
func (c *ActivationController) RegisterRoutes(router *gin.RouterGroup) {
	activation := router.Group("/activation")
	{
		activation.POST("/activate", c.ActivateDevice)

		admin := activation.Group("")
		admin.Use(middleware.RequireIdentity(), middleware.RequireAdmin())
		{
			admin.POST("/codes", c.GenerateCode)
		}
	}

	log.Println("Rutas Activation disponibles:")
	log.Println("  POST   /api/v1/activation/codes")
	log.Println("  POST   /api/v1/activation/activate")
}

// GenerateCode emite un código de activación para un usuario (admin)
func (c *ActivationController) GenerateCode(ctx *gin.Context) {
	if c.generateCodeUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Activation not available (database not configured)",
		})
		return
	}

	var req request.GenerateCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id format"})
		return
	}

	code, err := c.generateCodeUC.Execute(ctx.Request.Context(), userID)
	if err != nil {
		log.Printf("Error generating activation code: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, code)
}

// ActivateDevice canjea un código y retorna el usuario vinculado
func (c *ActivationController) ActivateDevice(ctx *gin.Context) {
	if c.activateDeviceUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Activation not available (database not configured)",
		})
		return
	}

	var req request.ActivateDeviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	userID, err := c.activateDeviceUC.Execute(ctx.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCodeNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Activation code not found"})
		case errors.Is(err, entity.ErrCodeExpired):
			ctx.JSON(http.StatusGone, gin.H{"error": "Activation code expired"})
		case errors.Is(err, entity.ErrCodeAlreadyUsed):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Activation code already used"})
		default:
			log.Printf("Error activating device: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user_id": userID})
}

package config

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig configuración del módulo API (health y versión)
type APIConfig struct {
	DB      *sql.DB
	Version string
}

// DefaultAPIConfig retorna la configuración por defecto
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		Version: "dev",
	}
}

// SetupAPIModule registra los endpoints de health check.
// El servicio reporta "degraded" si la base de datos no responde.
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg *APIConfig) {
	handler := func(ctx *gin.Context) {
		status := "ok"
		dbStatus := "not_configured"

		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err != nil {
				status = "degraded"
				dbStatus = "unreachable"
			} else {
				dbStatus = "ok"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":    status,
			"service":   "pos-app",
			"version":   cfg.Version,
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}

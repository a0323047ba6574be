package config

import (
	"github.com/gin-gonic/gin"

	"github.com/gauciv/pos-app/src/shared/infrastructure/middleware"
)

// SharedConfig contiene la configuración de los middlewares compartidos
type SharedConfig struct {
	EnableCORS        bool
	CORSAllowedOrigin string // Origen del dashboard admin
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableCORS:        true,
		CORSAllowedOrigin: "*",
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	if config.EnableCORS {
		router.Use(middleware.CORSMiddleware(middleware.CORSOptions{
			AllowedOrigin: config.CORSAllowedOrigin,
		}))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
	// Por ejemplo:
	// - Rate limiting
	// - Medición de rendimiento
}

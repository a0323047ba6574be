package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSOptions configuración del middleware de CORS
type CORSOptions struct {
	AllowedOrigin string
}

// CORSMiddleware habilita CORS para el dashboard admin (origen configurable).
func CORSMiddleware(opts CORSOptions) gin.HandlerFunc {
	origin := opts.AllowedOrigin
	if origin == "" {
		origin = "*"
	}

	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", origin)
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Collector-ID, X-User-Role")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}

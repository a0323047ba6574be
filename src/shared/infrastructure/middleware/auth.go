package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Claves de contexto que setean los middlewares de identidad
const (
	ContextCollectorID = "collector_id"
	ContextUserRole    = "user_role"
)

// La identidad llega como headers ya validados por el gateway de auth
// (mismo esquema de confianza que X-Tenant-ID en los servicios internos).
// Este servicio no implementa el protocolo de autenticación.
const (
	HeaderCollectorID = "X-Collector-ID"
	HeaderUserRole    = "X-User-Role"
)

const (
	RoleCollector = "collector"
	RoleAdmin     = "admin"
)

// RequireIdentity exige un X-Collector-ID válido y deja identidad y rol en el
// contexto de gin para los handlers.
func RequireIdentity() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		collectorID := ctx.GetHeader(HeaderCollectorID)
		if collectorID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "X-Collector-ID header is required",
			})
			return
		}

		if _, err := uuid.Parse(collectorID); err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid X-Collector-ID format",
			})
			return
		}

		role := ctx.GetHeader(HeaderUserRole)
		if role == "" {
			role = RoleCollector
		}

		ctx.Set(ContextCollectorID, collectorID)
		ctx.Set(ContextUserRole, role)
		ctx.Next()
	}
}

// RequireAdmin exige rol admin además de la identidad.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString(ContextUserRole)
		if role != RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin role required",
			})
			return
		}
		ctx.Next()
	}
}

// CollectorID lee la identidad validada del contexto.
func CollectorID(ctx *gin.Context) string {
	return ctx.GetString(ContextCollectorID)
}

// IsAdmin indica si la request tiene rol admin.
func IsAdmin(ctx *gin.Context) bool {
	return ctx.GetString(ContextUserRole) == RoleAdmin
}

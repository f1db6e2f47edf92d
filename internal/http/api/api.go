// Package api registers the HTTP surface over gin.
package api

import (
	"net/http"
	"strings"

	"github.com/credstack/credstack/internal/auth"
	"github.com/credstack/credstack/internal/history"
	"github.com/credstack/credstack/internal/http/api/handlers"
	"github.com/credstack/credstack/internal/query"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries the collaborators the route handlers need. AuthService is nil
// in single-user mode, which disables the auth endpoints and owner checks.
type Deps struct {
	DB          *gorm.DB
	AuthService *auth.Service
	Manager     *history.Manager
	Engine      *query.Engine
	SingleUser  bool
}

// RegisterRoutes registers all routes, middleware, and handlers.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	if r == nil || deps.Manager == nil || deps.Engine == nil {
		return
	}

	healthHandler := handlers.NewHealthHandler(deps.DB)
	r.GET("/healthz", healthHandler.Healthz)

	toolsHandler := handlers.NewToolsHandler()
	r.POST("/v0/tools/strength", toolsHandler.Strength)

	recordHandler := handlers.NewRecordHandler(deps.Manager, deps.Engine)

	if deps.SingleUser || deps.AuthService == nil {
		registerRecordRoutes(r.Group("/v0"), recordHandler)
		return
	}

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	authGroup := r.Group("/v0/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	authed := r.Group("/v0")
	authed.Use(sessionMiddleware(deps.AuthService))
	authed.GET("/auth/me", authHandler.Me)
	registerRecordRoutes(authed, recordHandler)
}

// registerRecordRoutes wires the record lifecycle and query endpoints.
func registerRecordRoutes(g *gin.RouterGroup, h *handlers.RecordHandler) {
	g.POST("/records/generate", h.Generate)
	g.GET("/records", h.List)
	g.GET("/records/export", h.Export)
	g.PATCH("/records/:id", h.Update)
	g.POST("/records/batch-group", h.BatchGroup)
	g.POST("/records/batch-delete", h.BatchDelete)
	g.DELETE("/records/:id", h.Delete)
	g.DELETE("/records", h.Clear)
}

// sessionMiddleware validates bearer tokens and loads the session user.
func sessionMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "empty token"})
			return
		}

		user, errResolve := svc.UserFromToken(c.Request.Context(), token)
		if errResolve != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(handlers.ContextUserKey, user)
		c.Next()
	}
}

// Package api exposes the lifecycle service over HTTP. The boundary only
// parses arguments, maps the error taxonomy onto status codes, and
// serializes results; all business rules live in the tracker.
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewServer creates the HTTP engine with all routes configured.
func NewServer(handler *Handler, apiKey string, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(requestLogger(log))
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	setupRoutes(r, handler, apiKey)

	return r
}

// setupRoutes wires the endpoints 1:1 onto the service operations.
func setupRoutes(r *gin.Engine, handler *Handler, apiKey string) {
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	if apiKey != "" {
		api.Use(authMiddleware(apiKey))
	}
	{
		api.GET("/applications", handler.ListApplications)
		api.POST("/applications", handler.IngestLinks)
		api.PATCH("/applications/:id", handler.UpdateApplication)
		api.POST("/applications/:id/archive", handler.ArchiveApplication)
		api.POST("/applications/:id/clear-link", handler.ClearLink)
		api.DELETE("/applications/:id", handler.DeleteApplication)
		api.GET("/stats", handler.GetStats)
		api.GET("/export", handler.Export)
		api.POST("/import", handler.Import)
	}

	// Favicon handler (return 204 to avoid 404s).
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

// requestLogger logs one structured line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client", c.ClientIP()).
			Msg("request")
	}
}

// corsMiddleware allows browser clients from any origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-API-Key, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// authMiddleware requires the configured API key on every /api request.
// The key is accepted in the X-API-Key header or as a bearer token.
func authMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-API-Key")
		if provided == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				provided = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if provided == "" || provided != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}

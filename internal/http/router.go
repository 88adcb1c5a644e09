package http

import (
	"github.com/gin-gonic/gin"

	"github.com/credport/credport/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	importController := NewImportController(cfg.AuditService, cfg.MaxUploadSizeMB)
	formatsController := NewFormatsController()
	auditController := NewAuditController(cfg.AuditService)

	api := router.Group("/api")
	api.Use(auth.APIPasswordMiddleware(cfg.APIPasswordHash))
	{
		api.POST("/import", importController.Import)
		api.GET("/formats", formatsController.List)
		api.GET("/audit", auditController.GetAuditEvents)
		api.GET("/audit/:import_id", auditController.GetAuditEvent)
	}

	return router
}

package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/fqdn/internal/api/handlers"
	"github.com/jroosing/fqdn/internal/api/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg Config) {
	api := r.Group("/api/v1")

	api.GET("/health", h.Health)

	protected := api.Group("")
	if cfg.APIKey != "" {
		protected.Use(middleware.RequireAPIKey(cfg.APIKey))
	}
	protected.POST("/parse", h.ParseName)
	protected.POST("/compare", h.CompareNames)
}

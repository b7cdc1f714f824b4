package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mverkaik/elights/internal/api/handlers"
	"github.com/mverkaik/elights/internal/api/middleware"
	"github.com/mverkaik/elights/internal/config"

	_ "github.com/mverkaik/elights/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.GET("/devices", h.ListDevices)
	api.GET("/devices/:serial", h.GetDevice)
	api.GET("/devices/:serial/lights", h.GetLights)
	api.PUT("/devices/:serial/lights", h.PutLights)

	api.GET("/groups", h.ListGroups)
	api.GET("/groups/:name", h.GetGroup)
	api.PUT("/groups/:name", h.PutGroup)
	api.DELETE("/groups/:name", h.DeleteGroup)
	api.PUT("/groups/:name/lights", h.PutGroupLights)
}

package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebook/backend/internal/service"
)

// SetupAPI registers the health check and the /api/v1 routes. Middleware in v1 runs
// only for the versioned routes.
func SetupAPI(router *gin.Engine, recipes service.IRecipeService, logger *slog.Logger, v1Middleware ...gin.HandlerFunc) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(v1Middleware...)
	{
		recipeHandler := NewRecipeHandler(recipes, logger)
		recipeHandler.RegisterRoutes(v1)
	}
}

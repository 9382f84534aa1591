package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebook/backend/internal/api"
	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options tunes the router. A nil RateLimiter disables rate limiting.
type Options struct {
	CORSOrigins []string
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(recipes service.IRecipeService, logger *slog.Logger, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.Metrics(),
		middleware.CORS(opts.CORSOrigins),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var v1Middleware []gin.HandlerFunc
	if opts.RateLimiter != nil {
		v1Middleware = append(v1Middleware, opts.RateLimiter.RateLimitMiddleware())
	}
	api.SetupAPI(router, recipes, logger, v1Middleware...)

	return router
}

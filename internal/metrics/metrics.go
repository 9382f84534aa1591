// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecipesStored tracks the number of recipes currently held by the session.
	RecipesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipebook_recipes_stored",
			Help: "Number of recipes currently stored",
		},
	)

	// RecipeOperations counts recipe operations by operation and result.
	RecipeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_recipe_operations_total",
			Help: "Total number of recipe operations",
		},
		[]string{"operation", "result"},
	)

	// CalorieWarnings counts calorie-exceeded notifications by the operation that raised them.
	CalorieWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_calorie_warnings_total",
			Help: "Total number of recipes whose calories exceeded the threshold",
		},
		[]string{"operation"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipebook_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipebook_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	PanicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipebook_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)

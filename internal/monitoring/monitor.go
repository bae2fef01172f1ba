package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	RecommendationsServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadpath_recommendations_total",
			Help: "Recommendation requests served, by role",
		},
		[]string{"role"},
	)

	RecommendationResultSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leadpath_recommendation_result_size",
			Help:    "Number of paths returned per recommendation",
			Buckets: []float64{0, 1, 2, 3, 4},
		},
	)

	QuizOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadpath_quiz_outcomes_total",
			Help: "Scored quiz attempts, by result",
		},
		[]string{"result"},
	)

	CatalogLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadpath_catalog_loads_total",
			Help: "Catalog lookups, by where they were served from",
		},
		[]string{"source"},
	)

	initOnce sync.Once
)

// Init registers every collector with the default registry. Safe to call
// more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			RecommendationsServed,
			RecommendationResultSize,
			QuizOutcomes,
			CatalogLoads,
		)
	})
}

// MetricsMiddleware records request count and latency per route pattern.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		// Resolve handler errors here so the recorded status is the one sent.
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		endpoint := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		RequestCounter.WithLabelValues(c.Method(), endpoint, status).Inc()
		RequestDuration.WithLabelValues(c.Method(), endpoint).Observe(time.Since(start).Seconds())
		return nil
	}
}

// PrometheusHandler exposes the default registry.
func PrometheusHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

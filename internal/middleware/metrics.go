package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// InitMetrics sets up the Prometheus HTTP middleware for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler recording per-route HTTP metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

var (
	// RedisErrors counts Redis errors by operation type. Incremented by the
	// cache client hook so cache degradation shows up on dashboards even
	// though requests keep succeeding against the database.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LoginAttempts counts login outcomes. The label is "success" or
	// "failure"; failures are not broken down further so the metric cannot
	// leak which part of the credential check failed.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})
)

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "kudos"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	activeRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "http_active_requests",
			Help:      "Number of in-flight HTTP requests",
		},
	)

	dbConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "db_connections_in_use",
			Help:      "Database connections currently in use",
		},
	)

	engagementTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "engagement_total",
			Help:      "Successful likes and upvotes",
		},
		[]string{"kind"},
	)
)

// engagementRoutes maps counter endpoints to the engagement kind they record.
var engagementRoutes = map[string]string{
	"/api/boards/:id/like":  "board_like",
	"/api/cards/:id/like":   "card_like",
	"/api/cards/:id/upvote": "card_upvote",
}

// Metrics collects Prometheus metrics per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		activeRequests.Inc()

		c.Next()

		activeRequests.Dec()
		status := c.Writer.Status()
		route := routeLabel(c.FullPath())

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())

		if kind, ok := engagementRoutes[route]; ok && status == 200 {
			engagementTotal.WithLabelValues(kind).Inc()
		}
	}
}

// SetDBConnectionsInUse updates the DB connection gauge.
func SetDBConnectionsInUse(count int) {
	dbConnectionsInUse.Set(float64(count))
}

// routeLabel keeps label cardinality bounded: unmatched paths share one label.
func routeLabel(fullPath string) string {
	if fullPath == "" {
		return "unmatched"
	}
	return fullPath
}

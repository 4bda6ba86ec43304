package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvargas/catalogos-backend/internal/metrics"
)

// MetricsMiddleware records per-request latency and status-range counts.
// Recording is best-effort and never blocks the response.
func MetricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		// Use the route pattern so /clientes/1 and /clientes/2 share a
		// dimension value. Unmatched routes keep the raw path.
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		endpoint := c.Request.Method + " " + route

		latencyMs := float64(time.Since(startTime).Microseconds()) / 1000.0
		collector.RecordLatency(endpoint, latencyMs)
		collector.RecordHTTPStatus(endpoint, c.Writer.Status())
	}
}

// metrics.go - Per-request HTTP metrics

package middleware

import (
	"strconv"
	"time"

	"go-shop-backend/metrics"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RequestMetrics records request count, duration and error count for every
// route, labeled with the route template rather than the raw path so
// /products/42 and /products/7 aggregate together.
func RequestMetrics(m *metrics.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		attrs := m.WithService([]attribute.KeyValue{
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.status_code", strconv.Itoa(status)),
		})
		opt := metric.WithAttributes(attrs...)

		ctx := c.Request.Context()
		m.HTTPRequestsTotal.Add(ctx, 1, opt)
		m.HTTPRequestDuration.Record(ctx, float64(time.Since(start).Milliseconds()), opt)
		if status >= 400 {
			m.HTTPRequestsErrors.Add(ctx, 1, opt)
		}
	}
}

package middleware

import (
	"time"

	"charter-booking/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records every request under its route template, not the raw path.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/audit-api/metrics"
)

// Metrics records the count and latency of every request. Unmatched routes are
// grouped under one path label.
func Metrics(recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		recorder.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

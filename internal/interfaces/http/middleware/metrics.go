package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver records served requests
type HTTPObserver interface {
	ObserveHTTPRequest(method, route, status string, elapsed time.Duration)
}

// HTTPMetrics records method, route pattern, status class and latency of every request.
// Unmatched routes are grouped under "unmatched" to keep label cardinality bounded.
func HTTPMetrics(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if observer == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTPRequest(c.Request.Method, route, StatusGroup(c.Writer.Status()), time.Since(start))
	}
}

// StatusGroup returns the status class label of an HTTP status code
func StatusGroup(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "5xx"
	case statusCode >= 400:
		return "4xx"
	case statusCode >= 300:
		return "3xx"
	case statusCode >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/innerlog/innerlog-api/internal/logger"
)

// RequestID assigns every request a correlation id (honoring an incoming
// X-Request-ID header) and threads it through the gin context, the request
// context, and the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		requestID := logger.RequestIDFromContext(ctx)

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Logger middleware logs each HTTP request with latency and status.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Ctx(c.Request.Context()).Info("request completed",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}

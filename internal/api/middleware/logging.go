package middleware

import (
	"time"

	"github.com/caldwellfirm/leadserver/internal/logging"
	"github.com/caldwellfirm/leadserver/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Process request
		c.Next()

		latency := time.Since(start)

		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			latency.String(),
		)
	}
}

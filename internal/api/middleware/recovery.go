package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/caldwellfirm/leadserver/internal/api/dto/common"
	"github.com/caldwellfirm/leadserver/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery catches panics anywhere in validation or dispatch and surfaces
// them as a generic 500. Full detail (including the stack trace) goes to the
// server log only, never to the external caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger := logging.GetLogger()
				logger.Error("panic handling %s %s (request %s): %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString("RequestID"),
					rec,
					string(debug.Stack()),
				)

				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					common.NewErrorResponse("Internal server error"),
				)
			}
		}()

		c.Next()
	}
}

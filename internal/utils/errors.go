package utils

import (
	"github.com/caldwellfirm/leadserver/internal/api/dto/common"
	"github.com/caldwellfirm/leadserver/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs the full error server-side and returns only the given
// generic message to the caller. Provider error bodies and stack detail must
// never reach the external response.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.AbortWithStatusJSON(status, common.NewErrorResponse(message))
}

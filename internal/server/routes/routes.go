package routes

import (
	"net/http"

	"github.com/caldwellfirm/leadserver/internal/api/dto/common"
	"github.com/caldwellfirm/leadserver/internal/api/middleware"
	"github.com/caldwellfirm/leadserver/internal/config"
	"github.com/caldwellfirm/leadserver/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetLogger()

	v1 := router.Group("/api/v1")

	SetupHealthRoutes(router, h)
	SetupLeadRoutes(v1, h, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigin))
	router.Use(middleware.SecurityHeaders())

	// Unsupported methods must answer 405, not gin's default 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse("Method not allowed"))
	})
}

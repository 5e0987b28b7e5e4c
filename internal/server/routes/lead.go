package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupLeadRoutes configures the public lead submission route.
// OPTIONS preflight is answered by the CORS middleware before routing, so
// only POST needs to be registered here.
func SetupLeadRoutes(router *gin.RouterGroup, h *Handlers, m *Middleware) {
	public := router.Group("/leads")
	{
		public.POST("/submit",
			m.Validation.ValidateLeadRequest(),
			h.Lead.Submit,
		)
	}
}

package middleware

import (
	"net/http"

	"github.com/caldwellfirm/leadserver/internal/api/dto/common"
	"github.com/caldwellfirm/leadserver/internal/api/dto/v1/lead"
	"github.com/caldwellfirm/leadserver/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContextKeyLead is where the validated submission is stored for the handler
const ContextKeyLead = "lead"

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// ValidateLeadRequest binds the JSON body into a LeadRequest and runs the
// ordered required-field and email-shape checks. On any failure the request
// is rejected with 400 before any dispatch side effect occurs.
func (m *ValidationMiddleware) ValidateLeadRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req lead.LeadRequest

		// A typed bind is the single validation boundary for untrusted
		// input: wrong-shaped bodies never reach the dispatcher.
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(
				http.StatusBadRequest,
				common.NewErrorResponse("Invalid request body"),
			)
			return
		}

		if vErr := validation.ValidateLead(m.validate, &req); vErr != nil {
			c.AbortWithStatusJSON(
				http.StatusBadRequest,
				common.NewErrorResponse(vErr.Message),
			)
			return
		}

		c.Set(ContextKeyLead, &req)
		c.Next()
	}
}

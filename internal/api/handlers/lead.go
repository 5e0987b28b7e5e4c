package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/caldwellfirm/leadserver/internal/api/dto/v1/lead"
	"github.com/caldwellfirm/leadserver/internal/api/middleware"
	"github.com/caldwellfirm/leadserver/internal/service"
	"github.com/caldwellfirm/leadserver/internal/utils"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles contact/evaluation form submissions
type LeadHandler struct {
	notifications *service.NotificationService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(notifications *service.NotificationService) *LeadHandler {
	return &LeadHandler{
		notifications: notifications,
	}
}

// Submit dispatches a validated submission to all notification channels and
// reports per-channel results. The submission is accepted once validation
// passed; channel failures never turn into a request-level failure.
func (h *LeadHandler) Submit(c *gin.Context) {
	// Get lead data from context (set by validation middleware)
	leadData, exists := c.Get(middleware.ContextKeyLead)
	if !exists {
		utils.HandleAPIError(c, errors.New("lead missing from request context"),
			http.StatusInternalServerError, "Internal server error")
		return
	}

	req, ok := leadData.(*lead.LeadRequest)
	if !ok {
		utils.HandleAPIError(c, errors.New("lead context value has unexpected type"),
			http.StatusInternalServerError, "Internal server error")
		return
	}

	sub := &service.Submission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
	}

	// Once dispatched, every channel attempt runs to its own natural
	// completion. The request context is canceled when the caller hangs up,
	// so it must not reach the provider calls.
	ctx := context.WithoutCancel(c.Request.Context())
	result := h.notifications.Dispatch(ctx, sub)

	c.JSON(http.StatusOK, lead.LeadResponse{
		Success: result.Accepted,
		Message: "Thank you for your submission. Our team will be in touch shortly.",
		Notifications: lead.NotificationFlags{
			FirmEmail:   result.FirmEmail.Success,
			ClientEmail: result.ClientEmail.Success,
			SMS:         result.SMS.Success,
		},
	})
}

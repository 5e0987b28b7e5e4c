package handlers

import (
	"net/http"

	"github.com/caldwellfirm/leadserver/internal/api/dto/common"
	"github.com/caldwellfirm/leadserver/internal/config"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check reports process liveness and whether the delivery providers are
// configured. No network probes; providers are only contacted on dispatch.
func (h *HealthHandler) Check(c *gin.Context) {
	resp := common.HealthResponse{
		Status:      "ok",
		Environment: h.cfg.Environment,
	}
	resp.Channels.Email = h.cfg.EmailAPIKey != ""
	resp.Channels.SMS = h.cfg.SMSClientID != "" &&
		h.cfg.SMSClientSecret != "" &&
		h.cfg.SMSAssertion != "" &&
		h.cfg.SMSServerBase != "" &&
		h.cfg.SMSFromNumber != ""

	c.JSON(http.StatusOK, resp)
}

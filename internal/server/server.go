package server

import (
	"io"

	"github.com/caldwellfirm/leadserver/internal/api/handlers"
	"github.com/caldwellfirm/leadserver/internal/api/middleware"
	"github.com/caldwellfirm/leadserver/internal/config"
	"github.com/caldwellfirm/leadserver/internal/logging"
	"github.com/caldwellfirm/leadserver/internal/server/routes"
	"github.com/caldwellfirm/leadserver/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires middleware, services, handlers and routes
func (s *Server) Init() {
	logger := logging.GetLogger()

	routes.SetupGlobalMiddleware(s.router, s.cfg, logger)

	// Create services
	emailService := service.NewEmailService(s.cfg)
	smsService := service.NewSMSService(s.cfg)
	notificationService := service.NewNotificationService(s.cfg, emailService, smsService)

	h := &routes.Handlers{
		Lead:   handlers.NewLeadHandler(notificationService),
		Health: handlers.NewHealthHandler(s.cfg),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	routes.Setup(s.router, h, m)
}

// Router exposes the underlying engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}

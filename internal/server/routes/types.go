package routes

import (
	"github.com/caldwellfirm/leadserver/internal/api/handlers"
	"github.com/caldwellfirm/leadserver/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Lead   *handlers.LeadHandler
	Health *handlers.HealthHandler
}

// Middleware contains all the per-route middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}

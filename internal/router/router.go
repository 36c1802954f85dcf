package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterReservations mounts the reservation API under /v1.  The group
// middlewares (rate limiter, response cache) run for every route.  When
// jwtSecret is non-empty, creating and cancelling reservations requires a
// bearer token carrying the STAFF role; reads stay public.  Callers are
// identified from their token before the group middlewares run, so
// per-user rate limits apply to reads and writes alike.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler, jwtSecret string, group ...echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if jwtSecret != "" {
		g.Use(middleware.Identify(jwtSecret))
	}
	g.Use(group...)

	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/:id", h.GetReservation)

	var write []echo.MiddlewareFunc
	if jwtSecret != "" {
		write = append(write,
			middleware.JWTAuth(jwtSecret),
			middleware.RequireRole(utils.RoleStaff),
		)
	}
	g.POST("/reservations", h.CreateReservation, write...)
	g.DELETE("/reservations/:id", h.CancelReservation, write...)
}

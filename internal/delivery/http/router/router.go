// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"classping/internal/delivery/http/response"
	"classping/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	TokenHandler    *handler.TokenHandler
	DispatchHandler *handler.DispatchHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	tokenHandler    *handler.TokenHandler
	dispatchHandler *handler.DispatchHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		tokenHandler:    params.TokenHandler,
		dispatchHandler: params.DispatchHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Token registry routes
	e.POST("/save-token", r.tokenHandler.SaveToken)
	e.DELETE("/delete-token", r.tokenHandler.DeleteToken)
	e.GET("/tokens/:userId", r.tokenHandler.ListUserTokens)

	// Dispatch routes, called by the scheduling trigger and by operators
	e.POST("/send-notification", r.dispatchHandler.SendToUser)
	e.POST("/send-notification-all", r.dispatchHandler.SendToAll)
	e.POST("/send-daily-reminders", r.dispatchHandler.SendDailyReminders)
	// Any method, so cron-style callers can use a GET with query params
	e.Any("/send-class-reminders", r.dispatchHandler.SendClassReminders)

	// Unmatched routes return structured JSON instead of Echo's default
	e.RouteNotFound("/*", func(c echo.Context) error {
		return response.Error(c, http.StatusNotFound, "ROUTE_NOT_FOUND", "Route not found",
			c.Request().Method+" "+c.Request().URL.Path)
	})
}

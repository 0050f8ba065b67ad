// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"classping/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness. The timestamp is rendered in the
// reference timezone so operators see the same wall clock the scheduling
// windows use.
type HealthHandler struct {
	loc *time.Location
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(loc *time.Location) *HealthHandler {
	return &HealthHandler{loc: loc}
}

// Check handles the health check request.
func (h *HealthHandler) Check(c echo.Context) error {
	now := time.Now().In(h.loc)

	return response.Success(c, http.StatusOK, map[string]any{
		"status":    "ok",
		"message":   "classping notification service is running",
		"timestamp": now.Format(time.RFC3339),
		"timezone":  h.loc.String(),
	}, "Service healthy")
}

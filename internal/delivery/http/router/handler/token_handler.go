package handler

import (
	"log/slog"
	"net/http"

	"classping/internal/delivery/http/response"
	"classping/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TokenHandler holds dependencies for device-token endpoints.
type TokenHandler struct {
	uc     usecase.TokenUsecase
	logger *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler, injected by Fx.
func NewTokenHandler(uc usecase.TokenUsecase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		uc:     uc,
		logger: logger,
	}
}

type saveTokenRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Token    string `json:"token" validate:"required"`
	DeviceID string `json:"deviceId"`
}

type deleteTokenRequest struct {
	UserID   string `json:"userId" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
}

// SaveToken handles push-token registration. The same route serves both
// first registration and token refresh; the store upserts on (user, device).
func (h *TokenHandler) SaveToken(c echo.Context) error {
	var req saveTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.SaveToken(c.Request().Context(), &usecase.TokenInfo{
		UserID:   req.UserID,
		Token:    req.Token,
		DeviceID: req.DeviceID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, token, "Token saved successfully")
}

// DeleteToken removes the token record for one device of a user.
func (h *TokenHandler) DeleteToken(c echo.Context) error {
	var req deleteTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token deletion input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteToken(c.Request().Context(), req.UserID, req.DeviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Token deleted successfully")
}

// ListUserTokens lists the raw token records of one user for inspection.
func (h *TokenHandler) ListUserTokens(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "userId is required")
	}

	tokens, err := h.uc.GetUserTokens(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId": userID,
		"count":  len(tokens),
		"tokens": tokens,
	}, "")
}

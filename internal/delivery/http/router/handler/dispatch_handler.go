package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"classping/internal/delivery/http/response"
	"classping/internal/domain/entity"
	domainerrors "classping/internal/domain/errors"
	"classping/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Reminder offsets the scheduling trigger is allowed to request. The engine
// itself accepts any positive offset; the boundary is where the product
// contract is enforced.
var allowedReminderOffsets = map[int]bool{10: true, 30: true}

// DispatchHandler holds dependencies for notification dispatch endpoints.
type DispatchHandler struct {
	uc     usecase.DispatchUsecase
	logger *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler, injected by Fx.
func NewDispatchHandler(uc usecase.DispatchUsecase, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendNotificationRequest struct {
	UserID string         `json:"userId"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Data   map[string]any `json:"data"`
}

type classRemindersRequest struct {
	MinutesBefore int `json:"minutesBefore"`
}

// messageFromRequest builds an explicit message when the caller supplied
// one. A request without title and body yields nil, which asks the engine
// to compose a personalized message instead.
func messageFromRequest(req *sendNotificationRequest) *entity.NotificationMessage {
	if req.Title == "" && req.Body == "" {
		return nil
	}

	return &entity.NotificationMessage{
		Title: req.Title,
		Body:  req.Body,
		Data:  entity.CoerceData(req.Data),
	}
}

// SendToUser handles a dispatch to a single user's devices.
func (h *DispatchHandler) SendToUser(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if req.UserID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "userId is required")
	}

	result := h.uc.SendToUser(c.Request().Context(), req.UserID, messageFromRequest(&req))
	if !result.Success {
		// "no tokens" and engine failures alike are client-visible
		// conditions on this route, not server faults.
		return response.Error(c, http.StatusBadRequest, "DISPATCH_NOT_DELIVERED", result.Message, result.Error)
	}

	return response.Success(c, http.StatusOK, result, "Notification sent")
}

// SendToAll handles a broadcast to every registered device.
func (h *DispatchHandler) SendToAll(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	result := h.uc.SendToAll(c.Request().Context(), messageFromRequest(&req))
	if !result.Success {
		return response.Error(c, http.StatusInternalServerError, "DISPATCH_FAILED", result.Message, result.Error)
	}

	return response.Success(c, http.StatusOK, result, "Broadcast sent")
}

// SendDailyReminders runs the personalized daily reminder sweep.
func (h *DispatchHandler) SendDailyReminders(c echo.Context) error {
	result := h.uc.SendDailyReminders(c.Request().Context())
	if !result.Success {
		return response.Error(c, http.StatusInternalServerError, "DISPATCH_FAILED", result.Message, result.Error)
	}

	return response.Success(c, http.StatusOK, result, "Daily reminders dispatched")
}

// SendClassReminders notifies users whose classes start minutesBefore
// minutes from now. The route accepts any method so cron-style callers can
// use plain GETs with query parameters.
func (h *DispatchHandler) SendClassReminders(c echo.Context) error {
	minutesBefore, err := h.reminderOffset(c)
	if err != nil {
		return errors.WithStack(err)
	}

	result := h.uc.SendClassReminders(c.Request().Context(), minutesBefore)
	if !result.Success {
		return response.Error(c, http.StatusInternalServerError, "DISPATCH_FAILED", result.Message, result.Error)
	}

	return response.Success(c, http.StatusOK, result, "Class reminders dispatched")
}

// reminderOffset reads minutesBefore from the query string or, failing
// that, the JSON body, and enforces the allowed offsets.
func (h *DispatchHandler) reminderOffset(c echo.Context) (int, error) {
	if raw := c.QueryParam("minutesBefore"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return 0, domainerrors.ErrInvalidReminderOffset.WithDetails("minutesBefore is not a number: " + raw)
		}
		if !allowedReminderOffsets[minutes] {
			return 0, domainerrors.ErrInvalidReminderOffset
		}
		return minutes, nil
	}

	var req classRemindersRequest
	if err := c.Bind(&req); err != nil {
		return 0, domainerrors.ErrInvalidReminderOffset.WithDetails("request body could not be parsed")
	}
	if !allowedReminderOffsets[req.MinutesBefore] {
		return 0, domainerrors.ErrInvalidReminderOffset
	}

	return req.MinutesBefore, nil
}

package usecase

import (
	"context"

	"classping/internal/domain/entity"
)

// UserDispatchDetail is the per-user breakdown of a reminder run.
type UserDispatchDetail struct {
	UserID               string `json:"user_id"`
	TokensAttempted      int    `json:"tokens_attempted"`
	SuccessCount         int    `json:"success_count"`
	FailureCount         int    `json:"failure_count"`
	InvalidTokensRemoved int    `json:"invalid_tokens_removed"`
	Error                string `json:"error,omitempty"`
}

// DispatchResult is the aggregated outcome of one dispatch-engine
// invocation. Entry points always return a structured result; engine-level
// failures surface as Success=false with Error set, never as a Go error to
// the HTTP layer.
type DispatchResult struct {
	Success              bool                 `json:"success"`
	Message              string               `json:"message,omitempty"`
	Error                string               `json:"error,omitempty"`
	TokensAttempted      int                  `json:"tokens_attempted"`
	SuccessCount         int                  `json:"success_count"`
	FailureCount         int                  `json:"failure_count"`
	InvalidTokensRemoved int                  `json:"invalid_tokens_removed"`
	UsersNotified        int                  `json:"users_notified"`
	OwnerlessSkipped     int                  `json:"ownerless_skipped,omitempty"`
	Details              []UserDispatchDetail `json:"details,omitempty"`
}

// DispatchUsecase is the dispatch engine: the orchestration entry points
// invoked by the HTTP boundary and, through it, the scheduling trigger.
type DispatchUsecase interface {
	// SendToUser sends a message to every token of one user. A user with no
	// registered tokens yields a non-success result, not an error. When msg
	// is nil a personalized daily message is composed.
	SendToUser(ctx context.Context, userID string, msg *entity.NotificationMessage) *DispatchResult

	// SendToAll sends one message to every token in the store, regardless
	// of owner. When msg is nil a generic announcement is used.
	SendToAll(ctx context.Context, msg *entity.NotificationMessage) *DispatchResult

	// SendDailyReminders groups all tokens by owner and sends each user a
	// personalized reminder built from tomorrow's timetable and current
	// attendance. One user's failure never aborts the rest.
	SendDailyReminders(ctx context.Context) *DispatchResult

	// SendClassReminders notifies every user who has a class starting
	// minutesBefore minutes from now (within the schedule tolerance
	// window), one notification per matching class. The {10,30} restriction
	// is enforced at the HTTP boundary; the engine accepts any positive
	// offset.
	SendClassReminders(ctx context.Context, minutesBefore int) *DispatchResult
}

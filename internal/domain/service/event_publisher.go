package service

import (
	"context"
	"time"
)

// DispatchEvent records the outcome of one dispatch-engine run. Events are
// published for downstream consumers (dashboards, audit) and carry no
// delivery guarantee beyond the broker's.
type DispatchEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Kind          string    `json:"kind"`                 // "user", "broadcast", "daily", "class"
	UserID        string    `json:"user_id,omitempty"`
	UsersNotified int       `json:"users_notified"`
	SuccessCount  int       `json:"success_count"`
	FailureCount  int       `json:"failure_count"`
	InvalidTokens int       `json:"invalid_tokens"`
	CompletedAt   time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch outcome for async consumers
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

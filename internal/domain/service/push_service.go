package service

import (
	"context"

	"classping/internal/domain/entity"
)

// BatchResult reports the outcome of one multicast send. InvalidTokens holds
// the token strings the transport reported as permanently invalid
// (unregistered or malformed); the dispatch engine removes those from the
// token store after each batch.
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// PushService defines the interface for the push-notification transport.
// Implementations must guarantee that per-token results align positionally
// with the input token list; invalid-token identification depends on it.
type PushService interface {
	// SendBatch sends one message to multiple device tokens (max 500 per
	// call for FCM).
	SendBatch(ctx context.Context, tokens []string, msg *entity.NotificationMessage) (*BatchResult, error)

	// SendSingle sends one message to a single device token.
	SendSingle(ctx context.Context, token string, msg *entity.NotificationMessage) error
}

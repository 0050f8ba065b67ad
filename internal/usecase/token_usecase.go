// Package usecase defines the application use-case interfaces and their
// request/response types.
package usecase

import (
	"context"

	"classping/internal/domain/entity"
)

// TokenInfo represents token information for registration
type TokenInfo struct {
	UserID   string `json:"user_id"`
	Token    string `json:"token"`
	DeviceID string `json:"device_id"`
}

// TokenUsecase defines the interface for device-token management use cases.
// It wraps the token store for the HTTP boundary and the dispatch engine.
type TokenUsecase interface {
	// SaveToken validates the token format and upserts the record.
	SaveToken(ctx context.Context, info *TokenInfo) (*entity.DeviceToken, error)

	// DeleteToken removes the token record for one device of a user.
	DeleteToken(ctx context.Context, userID, deviceID string) error

	// GetUserTokens retrieves all active tokens owned by a user.
	GetUserTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error)

	// GetAllTokens retrieves every active token record.
	GetAllTokens(ctx context.Context) ([]*entity.DeviceToken, error)

	// CleanupInvalid deletes the given token strings from the store and
	// returns how many deletions succeeded. Each deletion is attempted
	// independently; a failure to delete one token never blocks the rest.
	CleanupInvalid(ctx context.Context, tokens []string) int
}

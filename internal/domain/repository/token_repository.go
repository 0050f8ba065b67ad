// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"classping/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for token persistence.
var (
	// ErrTokenNotFound is returned when a token record is not found.
	ErrTokenNotFound = errors.New("device token not found")
)

// TokenRepository defines the interface for device-token database operations.
type TokenRepository interface {
	// Save upserts a token record keyed by (userID, deviceID).
	Save(ctx context.Context, token *entity.DeviceToken) error

	// FindAll retrieves every active token record. Used for broadcast and
	// for grouping tokens by owner during reminder dispatch.
	FindAll(ctx context.Context) ([]*entity.DeviceToken, error)

	// FindByUser retrieves all active token records owned by a user.
	FindByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error)

	// DeleteByUserDevice removes the token record for one device of a user.
	DeleteByUserDevice(ctx context.Context, userID, deviceID string) error

	// DeleteByToken removes a token record by its token string. Deleting a
	// token that is already absent is not an error; cleanup after a dispatch
	// must be idempotent.
	DeleteByToken(ctx context.Context, token string) error
}

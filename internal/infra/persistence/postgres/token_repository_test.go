package postgres

import (
	"context"
	"testing"

	"classping/internal/domain/entity"
	domainerrors "classping/internal/domain/errors"
	"classping/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestTokenRepository backs the repository with an in-memory SQLite
// database carrying the same shape and constraints as the device_tokens
// table, close enough to exercise the upsert and delete paths.
func newTestTokenRepository(t *testing.T) repository.TokenRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// each new connection to :memory: would open a fresh database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE device_tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		token TEXT NOT NULL UNIQUE,
		device_id TEXT NOT NULL,
		is_active NUMERIC NOT NULL DEFAULT true,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, device_id)
	)`).Error)

	return NewTokenRepository(db)
}

func newTestToken(userID, deviceID, token string) *entity.DeviceToken {
	return &entity.DeviceToken{
		ID:       uuid.New(),
		UserID:   userID,
		Token:    token,
		DeviceID: deviceID,
		IsActive: true,
	}
}

func TestTokenRepository_SaveReplacesTokenForSameDevice(t *testing.T) {
	repo := newTestTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestToken("user-1", "device-1", "fcm-token-old")))
	require.NoError(t, repo.Save(ctx, newTestToken("user-1", "device-1", "fcm-token-new")))

	tokens, err := repo.FindByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "fcm-token-new", tokens[0].Token)
}

func TestTokenRepository_ReRegisterAfterDelete(t *testing.T) {
	repo := newTestTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestToken("user-1", "device-1", "fcm-token-first")))
	require.NoError(t, repo.DeleteByUserDevice(ctx, "user-1", "device-1"))

	// the device comes back with a fresh token; it must be visible again
	require.NoError(t, repo.Save(ctx, newTestToken("user-1", "device-1", "fcm-token-second")))

	byUser, err := repo.FindByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "fcm-token-second", byUser[0].Token)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTokenRepository_ReissuedTokenAfterCleanup(t *testing.T) {
	repo := newTestTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestToken("user-1", "device-1", "fcm-token-shared")))
	require.NoError(t, repo.DeleteByToken(ctx, "fcm-token-shared"))

	// a token string freed by cleanup can be registered by another device
	require.NoError(t, repo.Save(ctx, newTestToken("user-2", "device-2", "fcm-token-shared")))

	tokens, err := repo.FindByUser(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "fcm-token-shared", tokens[0].Token)
}

func TestTokenRepository_SaveRejectsTokenOwnedByAnotherDevice(t *testing.T) {
	repo := newTestTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestToken("user-1", "device-1", "fcm-token-taken")))

	err := repo.Save(ctx, newTestToken("user-2", "device-2", "fcm-token-taken"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TOKEN_CONFLICT", appErr.ErrorCode())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTokenRepository_DeleteByTokenIsIdempotent(t *testing.T) {
	repo := newTestTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestToken("user-1", "device-1", "fcm-token-gone")))

	require.NoError(t, repo.DeleteByToken(ctx, "fcm-token-gone"))
	require.NoError(t, repo.DeleteByToken(ctx, "fcm-token-gone"))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTokenRepository_DeleteByUserDeviceMissing(t *testing.T) {
	repo := newTestTokenRepository(t)

	err := repo.DeleteByUserDevice(context.Background(), "user-1", "device-unknown")
	require.ErrorIs(t, err, repository.ErrTokenNotFound)
}

// Package impl contains the concrete use-case service implementations.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	"classping/internal/domain/entity"
	domainerrors "classping/internal/domain/errors"
	"classping/internal/domain/repository"
	"classping/internal/errors"
	"classping/internal/usecase"
)

// A push token must be longer than minTokenLength and match one of the
// accepted shapes. The generic pattern is intentionally permissive so that
// FCM registration tokens and other providers' tokens both pass.
const minTokenLength = 20

var (
	expoTokenPattern    = regexp.MustCompile(`^ExponentPushToken\[[A-Za-z0-9_-]+\]$`)
	genericTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_:-]+$`)
)

// ValidTokenFormat reports whether a raw push token is acceptable for
// registration.
func ValidTokenFormat(token string) bool {
	if len(token) <= minTokenLength {
		return false
	}

	return expoTokenPattern.MatchString(token) || genericTokenPattern.MatchString(token)
}

type tokenService struct {
	logger    *slog.Logger
	tokenRepo repository.TokenRepository
}

// NewTokenService creates a new token service instance
func NewTokenService(logger *slog.Logger, tokenRepo repository.TokenRepository) usecase.TokenUsecase {
	return &tokenService{
		logger:    logger,
		tokenRepo: tokenRepo,
	}
}

// SaveToken validates the token format and upserts the record.
func (s *tokenService) SaveToken(ctx context.Context, info *usecase.TokenInfo) (*entity.DeviceToken, error) {
	if !ValidTokenFormat(info.Token) {
		return nil, domainerrors.ErrTokenInvalidFormat.WithDetails("token must be longer than 20 characters and match a known provider format")
	}

	token := &entity.DeviceToken{
		UserID:   info.UserID,
		Token:    info.Token,
		DeviceID: info.DeviceID,
		IsActive: true,
	}

	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return nil, errors.Wrap(err, "save device token")
	}

	return token, nil
}

// DeleteToken removes the token record for one device of a user.
func (s *tokenService) DeleteToken(ctx context.Context, userID, deviceID string) error {
	if err := s.tokenRepo.DeleteByUserDevice(ctx, userID, deviceID); err != nil {
		return errors.Wrap(err, "delete device token")
	}

	return nil
}

// GetUserTokens retrieves all active tokens owned by a user.
func (s *tokenService) GetUserTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	tokens, err := s.tokenRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "find tokens by user")
	}

	return tokens, nil
}

// GetAllTokens retrieves every active token record.
func (s *tokenService) GetAllTokens(ctx context.Context) ([]*entity.DeviceToken, error) {
	tokens, err := s.tokenRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find all tokens")
	}

	return tokens, nil
}

// CleanupInvalid deletes the given token strings independently. Deletion is
// idempotent, so overlapping dispatch runs cleaning the same token are safe.
func (s *tokenService) CleanupInvalid(ctx context.Context, tokens []string) int {
	removed := 0
	for _, token := range tokens {
		if err := s.tokenRepo.DeleteByToken(ctx, token); err != nil {
			s.logger.Warn("failed to remove invalid token, continuing",
				slog.String("token_suffix", tokenSuffix(token)),
				slog.Any("error", err),
			)

			continue
		}
		removed++
	}

	return removed
}

// tokenSuffix keeps log lines useful without writing whole tokens to logs.
func tokenSuffix(token string) string {
	const keep = 8
	if len(token) <= keep {
		return token
	}

	return "…" + token[len(token)-keep:]
}

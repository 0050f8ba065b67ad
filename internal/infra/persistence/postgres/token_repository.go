// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"classping/internal/domain/entity"
	domainerrors "classping/internal/domain/errors"
	"classping/internal/domain/repository"
	"classping/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Save upserts a token record keyed by (user_id, device_id). Re-registering
// the same device replaces its token string and reactivates the record.
func (repo *tokenRepository) Save(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "is_active", "updated_at"}),
		}).
		Create(tokenM).Error
	if err != nil {
		// The (user_id, device_id) key is resolved by the upsert clause, so a
		// unique violation here can only come from the token string index:
		// the same token submitted under a different user or device.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTokenConflict.WithDetails(token.Token)
		}

		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTokenSaveFailed.WrapMessage("missing required token fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save device token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindAll retrieves every active token record.
func (repo *tokenRepository) FindAll(ctx context.Context) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all device tokens")
	}

	return toTokenDomainSlice(tokenModels), nil
}

// FindByUser retrieves all active token records owned by a user.
func (repo *tokenRepository) FindByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by user")
	}

	return toTokenDomainSlice(tokenModels), nil
}

// DeleteByUserDevice removes the token record for one device of a user.
func (repo *tokenRepository) DeleteByUserDevice(ctx context.Context, userID, deviceID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteByToken removes a token record by its token string. An already-absent
// token is not an error; dispatch cleanup must be idempotent under
// overlapping runs.
func (repo *tokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeviceTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete device token by token string")
	}

	return nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		DeviceID:  data.DeviceID,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toTokenDomainSlice(models []*model.DeviceTokenModel) []*entity.DeviceToken {
	tokens := make([]*entity.DeviceToken, 0, len(models))
	for _, tokenM := range models {
		tokens = append(tokens, toTokenDomain(tokenM))
	}

	return tokens
}

// fromTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		DeviceID:  data.DeviceID,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package postgres

import (
	"context"

	"classping/internal/domain/entity"
	"classping/internal/domain/repository"
	"classping/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// attendanceRepository implements the repository.AttendanceRepository interface.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository is the constructor for attendanceRepository.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// FindSubjectsByUser retrieves all non-deleted subject records for a user.
// GORM's soft-delete scope excludes deleted rows automatically.
func (repo *attendanceRepository) FindSubjectsByUser(ctx context.Context, userID string) ([]*entity.SubjectRecord, error) {
	var subjectModels []*model.SubjectModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subjectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subjects by user")
	}

	subjects := make([]*entity.SubjectRecord, 0, len(subjectModels))
	for _, subjectM := range subjectModels {
		subjects = append(subjects, toSubjectDomain(subjectM))
	}

	return subjects, nil
}

// FindMinimumRequired retrieves the user's minimum-attendance preference,
// falling back to the default when no preference row exists.
func (repo *attendanceRepository) FindMinimumRequired(ctx context.Context, userID string) (int, error) {
	var prefM model.UserPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.DefaultMinimumAttendance, nil
		}

		return 0, errors.Wrap(err, "failed to find user attendance preference")
	}

	if prefM.MinimumAttendance <= 0 {
		return entity.DefaultMinimumAttendance, nil
	}

	return prefM.MinimumAttendance, nil
}

// toSubjectDomain converts a GORM SubjectModel to a domain SubjectRecord entity.
func toSubjectDomain(data *model.SubjectModel) *entity.SubjectRecord {
	if data == nil {
		return nil
	}

	return &entity.SubjectRecord{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		TotalClasses:    data.TotalClasses,
		AttendedClasses: data.AttendedClasses,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

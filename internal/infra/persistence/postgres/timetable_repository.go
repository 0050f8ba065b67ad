package postgres

import (
	"context"

	"classping/internal/domain/entity"
	"classping/internal/domain/repository"
	"classping/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// timetableRepository implements the repository.TimetableRepository interface.
type timetableRepository struct {
	db *gorm.DB
}

// NewTimetableRepository is the constructor for timetableRepository.
func NewTimetableRepository(db *gorm.DB) repository.TimetableRepository {
	return &timetableRepository{
		db: db,
	}
}

// FindByUserAndDay retrieves a user's timetable entries for one day-of-week
// name. Ordering is left to the schedule package, which understands the
// 12-hour time strings.
func (repo *timetableRepository) FindByUserAndDay(ctx context.Context, userID, day string) ([]*entity.TimetableEntry, error) {
	var entryModels []*model.TimetableEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find timetable entries")
	}

	entries := make([]*entity.TimetableEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toTimetableDomain(entryM))
	}

	return entries, nil
}

// toTimetableDomain converts a GORM TimetableEntryModel to a domain TimetableEntry entity.
func toTimetableDomain(data *model.TimetableEntryModel) *entity.TimetableEntry {
	if data == nil {
		return nil
	}

	return &entity.TimetableEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		Day:       data.Day,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Subject:   data.Subject,
		ClassType: entity.ClassType(data.ClassType),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

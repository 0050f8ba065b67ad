package repository

import (
	"context"

	"classping/internal/domain/entity"
)

// TimetableRepository defines read access to user class schedules.
type TimetableRepository interface {
	// FindByUserAndDay retrieves a user's timetable entries for one
	// day-of-week name, e.g. "Tuesday".
	FindByUserAndDay(ctx context.Context, userID, day string) ([]*entity.TimetableEntry, error)
}

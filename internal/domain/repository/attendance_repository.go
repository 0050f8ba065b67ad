package repository

import (
	"context"

	"classping/internal/domain/entity"
)

// AttendanceRepository defines read access to the per-subject class counters
// and the user's attendance preference. This core never mutates either.
type AttendanceRepository interface {
	// FindSubjectsByUser retrieves all non-deleted subject records for a user.
	FindSubjectsByUser(ctx context.Context, userID string) ([]*entity.SubjectRecord, error)

	// FindMinimumRequired retrieves the user's stored minimum-attendance
	// preference. Implementations return entity.DefaultMinimumAttendance
	// when the user has no stored preference.
	FindMinimumRequired(ctx context.Context, userID string) (int, error)
}

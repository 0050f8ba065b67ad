package impl

import (
	"context"
	"log/slog"
	"math"

	"classping/internal/domain/entity"
	"classping/internal/domain/repository"
	"classping/internal/usecase"
)

type attendanceService struct {
	logger         *slog.Logger
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService creates a new attendance aggregation service instance
func NewAttendanceService(logger *slog.Logger, attendanceRepo repository.AttendanceRepository) usecase.AttendanceUsecase {
	return &attendanceService{
		logger:         logger,
		attendanceRepo: attendanceRepo,
	}
}

// Snapshot sums the class counters across a user's subjects. Read failures
// degrade to the default snapshot; reminder dispatch must keep going for
// everyone else.
func (s *attendanceService) Snapshot(ctx context.Context, userID string) entity.AttendanceSnapshot {
	subjects, err := s.attendanceRepo.FindSubjectsByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("attendance read failed, using default snapshot",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return entity.DefaultSnapshot(userID)
	}

	minimum, err := s.attendanceRepo.FindMinimumRequired(ctx, userID)
	if err != nil {
		s.logger.Warn("attendance preference read failed, using default minimum",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		minimum = entity.DefaultMinimumAttendance
	}

	total, attended := 0, 0
	for _, subject := range subjects {
		total += subject.TotalClasses
		attended += subject.AttendedClasses
	}

	// Counters come from the client and can be inconsistent. Not clamped:
	// a percentage above 100 points at an upstream data bug that clamping
	// would mask.
	if attended > total {
		s.logger.Warn("attended classes exceed total classes",
			slog.String("user_id", userID),
			slog.Int("attended", attended),
			slog.Int("total", total),
		)
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(attended) / float64(total) * 100))
	}

	return entity.AttendanceSnapshot{
		UserID:          userID,
		Percentage:      percentage,
		MinimumRequired: minimum,
		TotalClasses:    total,
		AttendedClasses: attended,
	}
}

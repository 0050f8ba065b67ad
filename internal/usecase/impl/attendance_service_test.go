package impl

import (
	"context"
	"log/slog"
	"testing"

	"classping/internal/domain/entity"
	mockRepo "classping/internal/mocks/repository"
	"classping/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// attendanceServiceFixtures holds all test dependencies for attendance
// service tests.
type attendanceServiceFixtures struct {
	service        usecase.AttendanceUsecase
	attendanceRepo *mockRepo.MockAttendanceRepository
}

func createTestAttendanceService(t *testing.T) attendanceServiceFixtures {
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	service := NewAttendanceService(slog.Default(), attendanceRepo)

	return attendanceServiceFixtures{
		service:        service,
		attendanceRepo: attendanceRepo,
	}
}

func TestAttendanceService_Snapshot_SumsAcrossSubjects(t *testing.T) {
	fx := createTestAttendanceService(t)
	ctx := context.Background()

	fx.attendanceRepo.EXPECT().
		FindSubjectsByUser(ctx, "user-1").
		Return([]*entity.SubjectRecord{
			{Name: "Maths", TotalClasses: 40, AttendedClasses: 30},
			{Name: "Physics", TotalClasses: 20, AttendedClasses: 18},
		}, nil)
	fx.attendanceRepo.EXPECT().
		FindMinimumRequired(ctx, "user-1").
		Return(80, nil)

	snapshot := fx.service.Snapshot(ctx, "user-1")

	assert.Equal(t, 60, snapshot.TotalClasses)
	assert.Equal(t, 48, snapshot.AttendedClasses)
	assert.Equal(t, 80, snapshot.Percentage)
	assert.Equal(t, 80, snapshot.MinimumRequired)
}

func TestAttendanceService_Snapshot_RoundsToNearest(t *testing.T) {
	fx := createTestAttendanceService(t)
	ctx := context.Background()

	// 2/3 = 66.67%, rounds to 67.
	fx.attendanceRepo.EXPECT().
		FindSubjectsByUser(ctx, "user-1").
		Return([]*entity.SubjectRecord{
			{Name: "Maths", TotalClasses: 3, AttendedClasses: 2},
		}, nil)
	fx.attendanceRepo.EXPECT().
		FindMinimumRequired(ctx, "user-1").
		Return(entity.DefaultMinimumAttendance, nil)

	snapshot := fx.service.Snapshot(ctx, "user-1")
	assert.Equal(t, 67, snapshot.Percentage)
}

func TestAttendanceService_Snapshot_ZeroTotalIsZeroPercent(t *testing.T) {
	fx := createTestAttendanceService(t)
	ctx := context.Background()

	fx.attendanceRepo.EXPECT().
		FindSubjectsByUser(ctx, "user-1").
		Return([]*entity.SubjectRecord{}, nil)
	fx.attendanceRepo.EXPECT().
		FindMinimumRequired(ctx, "user-1").
		Return(entity.DefaultMinimumAttendance, nil)

	snapshot := fx.service.Snapshot(ctx, "user-1")
	assert.Equal(t, 0, snapshot.Percentage)
	assert.Equal(t, 0, snapshot.TotalClasses)
}

func TestAttendanceService_Snapshot_ReadFailureDegradesToDefault(t *testing.T) {
	fx := createTestAttendanceService(t)
	ctx := context.Background()

	fx.attendanceRepo.EXPECT().
		FindSubjectsByUser(ctx, "user-1").
		Return(nil, errors.New("connection refused"))

	snapshot := fx.service.Snapshot(ctx, "user-1")

	assert.Equal(t, 0, snapshot.Percentage)
	assert.Equal(t, entity.DefaultMinimumAttendance, snapshot.MinimumRequired)
}

func TestAttendanceService_Snapshot_OverCountNotClamped(t *testing.T) {
	fx := createTestAttendanceService(t)
	ctx := context.Background()

	// Inconsistent client counters: attended exceeds total. The value is
	// reported as-is so the upstream bug stays visible.
	fx.attendanceRepo.EXPECT().
		FindSubjectsByUser(ctx, "user-1").
		Return([]*entity.SubjectRecord{
			{Name: "Maths", TotalClasses: 10, AttendedClasses: 12},
		}, nil)
	fx.attendanceRepo.EXPECT().
		FindMinimumRequired(ctx, "user-1").
		Return(entity.DefaultMinimumAttendance, nil)

	snapshot := fx.service.Snapshot(ctx, "user-1")
	assert.Equal(t, 120, snapshot.Percentage)
}

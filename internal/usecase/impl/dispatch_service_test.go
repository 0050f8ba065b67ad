package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"classping/config"
	"classping/internal/domain/entity"
	"classping/internal/domain/service"
	mockRepo "classping/internal/mocks/repository"
	mockSvc "classping/internal/mocks/service"
	mockUC "classping/internal/mocks/usecase"
	"classping/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Monday, 10:00 in the reference timezone. Tomorrow is Tuesday.
var fixedNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

// dispatchServiceFixtures holds all test dependencies for dispatch engine
// tests.
type dispatchServiceFixtures struct {
	service       usecase.DispatchUsecase
	tokenUC       *mockUC.MockTokenUsecase
	attendanceUC  *mockUC.MockAttendanceUsecase
	timetableRepo *mockRepo.MockTimetableRepository
	pushSvc       *mockSvc.MockPushService
	publisher     *mockSvc.MockEventPublisher
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	tokenUC := mockUC.NewMockTokenUsecase(t)
	attendanceUC := mockUC.NewMockAttendanceUsecase(t)
	timetableRepo := mockRepo.NewMockTimetableRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewDispatchService(
		slog.Default(),
		&config.Config{},
		time.UTC,
		tokenUC,
		attendanceUC,
		timetableRepo,
		pushSvc,
		publisher,
	)
	svc.(*dispatchService).now = func() time.Time { return fixedNow }

	return dispatchServiceFixtures{
		service:       svc,
		tokenUC:       tokenUC,
		attendanceUC:  attendanceUC,
		timetableRepo: timetableRepo,
		pushSvc:       pushSvc,
		publisher:     publisher,
	}
}

func userToken(userID, token string) *entity.DeviceToken {
	return &entity.DeviceToken{UserID: userID, Token: token, IsActive: true}
}

func TestDispatchService_SendToUser_NoTokensIsNonSuccess(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	fx.tokenUC.EXPECT().
		GetUserTokens(ctx, "user-1").
		Return([]*entity.DeviceToken{}, nil)
	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(nil)

	result := fx.service.SendToUser(ctx, "user-1", &entity.NotificationMessage{Title: "t", Body: "b"})

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "no push tokens")
	assert.Empty(t, result.Error)
}

func TestDispatchService_SendToUser_RemovesInvalidTokens(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	tokens := []*entity.DeviceToken{
		userToken("user-1", "t1"),
		userToken("user-1", "t2"),
		userToken("user-1", "t3"),
		userToken("user-1", "t4"),
		userToken("user-1", "t5"),
	}
	msg := &entity.NotificationMessage{Title: "hello", Body: "world"}

	fx.tokenUC.EXPECT().
		GetUserTokens(ctx, "user-1").
		Return(tokens, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"t1", "t2", "t3", "t4", "t5"}, msg).
		Return(&service.BatchResult{
			SuccessCount:  3,
			FailureCount:  2,
			InvalidTokens: []string{"t2", "t4"},
		}, nil)
	fx.tokenUC.EXPECT().
		CleanupInvalid(ctx, []string{"t2", "t4"}).
		Return(2)
	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(nil)

	result := fx.service.SendToUser(ctx, "user-1", msg)

	assert.True(t, result.Success)
	assert.Equal(t, 5, result.TokensAttempted)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
	assert.Equal(t, 2, result.InvalidTokensRemoved)
}

func TestDispatchService_SendToUser_StoreReadFailure(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	fx.tokenUC.EXPECT().
		GetUserTokens(ctx, "user-1").
		Return(nil, errors.New("database unreachable"))
	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(nil)

	result := fx.service.SendToUser(ctx, "user-1", nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "database unreachable")
}

func TestDispatchService_SendToAll_UsesBroadcastFallback(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	tokens := []*entity.DeviceToken{
		userToken("user-1", "t1"),
		userToken("user-2", "t2"),
	}

	fx.tokenUC.EXPECT().
		GetAllTokens(ctx).
		Return(tokens, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"t1", "t2"}, mock.MatchedBy(func(msg *entity.NotificationMessage) bool {
			return msg.Title == "ClassPing"
		})).
		Return(&service.BatchResult{SuccessCount: 2}, nil)
	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(nil)

	result := fx.service.SendToAll(ctx, nil)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.SuccessCount)
}

func TestDispatchService_SendDailyReminders_IsolatesUserFailures(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	tokens := []*entity.DeviceToken{
		userToken("user-a", "token-a"),
		userToken("", "ownerless-token"),
		userToken("user-b", "token-b"),
		userToken("user-c", "token-c"),
	}

	fx.tokenUC.EXPECT().
		GetAllTokens(ctx).
		Return(tokens, nil)

	for _, userID := range []string{"user-a", "user-b", "user-c"} {
		fx.attendanceUC.EXPECT().
			Snapshot(ctx, userID).
			Return(entity.AttendanceSnapshot{
				UserID:          userID,
				Percentage:      80,
				MinimumRequired: 75,
			})
		fx.timetableRepo.EXPECT().
			FindByUserAndDay(ctx, userID, "Tuesday").
			Return(nil, nil)
	}

	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-a"}, mock.AnythingOfType("*entity.NotificationMessage")).
		Return(&service.BatchResult{SuccessCount: 1}, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-b"}, mock.AnythingOfType("*entity.NotificationMessage")).
		Return(nil, errors.New("transport down"))
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-c"}, mock.AnythingOfType("*entity.NotificationMessage")).
		Return(&service.BatchResult{SuccessCount: 1}, nil)

	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(nil)

	result := fx.service.SendDailyReminders(ctx)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.UsersNotified)
	assert.Equal(t, 1, result.OwnerlessSkipped)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)

	require.Len(t, result.Details, 3)
	assert.Empty(t, result.Details[0].Error)
	assert.Contains(t, result.Details[1].Error, "transport down")
	assert.Empty(t, result.Details[2].Error)
}

func TestDispatchService_SendClassReminders_OnlyMatchingWindow(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	tokens := []*entity.DeviceToken{
		userToken("user-1", "t1"),
		userToken("user-2", "t2"),
	}

	fx.tokenUC.EXPECT().
		GetAllTokens(ctx).
		Return(tokens, nil)

	// user-1 has one class 30 minutes out and one well past the window.
	fx.timetableRepo.EXPECT().
		FindByUserAndDay(ctx, "user-1", "Monday").
		Return([]*entity.TimetableEntry{
			{Subject: "Physics", ClassType: entity.ClassTypeLecture, StartTime: "10:30 AM"},
			{Subject: "Maths", ClassType: entity.ClassTypeLecture, StartTime: "01:00 PM"},
		}, nil)
	// user-2 has nothing starting soon.
	fx.timetableRepo.EXPECT().
		FindByUserAndDay(ctx, "user-2", "Monday").
		Return([]*entity.TimetableEntry{
			{Subject: "Chemistry", ClassType: entity.ClassTypeLab, StartTime: "04:00 PM"},
		}, nil)

	fx.attendanceUC.EXPECT().
		Snapshot(ctx, "user-1").
		Return(entity.AttendanceSnapshot{UserID: "user-1", Percentage: 82, MinimumRequired: 75})

	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"t1"}, mock.MatchedBy(func(msg *entity.NotificationMessage) bool {
			return msg.Title == "Physics starts in 30 minutes"
		})).
		Return(&service.BatchResult{SuccessCount: 1}, nil)

	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(nil)

	result := fx.service.SendClassReminders(ctx, 30)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.UsersNotified)
	assert.Equal(t, 1, result.SuccessCount)
	require.Len(t, result.Details, 1)
	assert.Equal(t, "user-1", result.Details[0].UserID)
}

func TestDispatchService_SendClassReminders_TimetableFailureSkipsUser(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	tokens := []*entity.DeviceToken{
		userToken("user-1", "t1"),
		userToken("user-2", "t2"),
	}

	fx.tokenUC.EXPECT().
		GetAllTokens(ctx).
		Return(tokens, nil)

	fx.timetableRepo.EXPECT().
		FindByUserAndDay(ctx, "user-1", "Monday").
		Return(nil, errors.New("query timeout"))
	fx.timetableRepo.EXPECT().
		FindByUserAndDay(ctx, "user-2", "Monday").
		Return([]*entity.TimetableEntry{
			{Subject: "Physics", ClassType: entity.ClassTypeLecture, StartTime: "10:10 AM"},
		}, nil)

	fx.attendanceUC.EXPECT().
		Snapshot(ctx, "user-2").
		Return(entity.AttendanceSnapshot{UserID: "user-2", Percentage: 70, MinimumRequired: 75})

	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"t2"}, mock.AnythingOfType("*entity.NotificationMessage")).
		Return(&service.BatchResult{SuccessCount: 1}, nil)

	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(nil)

	result := fx.service.SendClassReminders(ctx, 10)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.UsersNotified)
	require.Len(t, result.Details, 2)
	assert.Contains(t, result.Details[0].Error, "query timeout")
	assert.Equal(t, "user-2", result.Details[1].UserID)
}

func TestDispatchService_PublisherFailureDoesNotFailDispatch(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	msg := &entity.NotificationMessage{Title: "hello", Body: "world"}

	fx.tokenUC.EXPECT().
		GetUserTokens(ctx, "user-1").
		Return([]*entity.DeviceToken{userToken("user-1", "t1")}, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"t1"}, msg).
		Return(&service.BatchResult{SuccessCount: 1}, nil)
	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(errors.New("broker unavailable"))

	result := fx.service.SendToUser(ctx, "user-1", msg)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.SuccessCount)
}

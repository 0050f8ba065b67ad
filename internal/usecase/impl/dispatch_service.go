package impl

import (
	"context"
	"log/slog"
	"time"

	"classping/config"
	"classping/internal/domain/entity"
	"classping/internal/domain/repository"
	"classping/internal/domain/service"
	"classping/internal/schedule"
	"classping/internal/usecase"
)

// fcmBatchSize is the transport's hard per-request token limit.
const fcmBatchSize = 500

type dispatchService struct {
	logger         *slog.Logger
	loc            *time.Location
	interUserDelay time.Duration
	tokenUC        usecase.TokenUsecase
	attendanceUC   usecase.AttendanceUsecase
	timetableRepo  repository.TimetableRepository
	pushSvc        service.PushService
	publisher      service.EventPublisher

	// now is swapped in tests; dispatch decisions are wall-clock sensitive.
	now func() time.Time
}

// NewDispatchService creates the dispatch engine instance.
func NewDispatchService(
	logger *slog.Logger,
	cfg *config.Config,
	loc *time.Location,
	tokenUC usecase.TokenUsecase,
	attendanceUC usecase.AttendanceUsecase,
	timetableRepo repository.TimetableRepository,
	pushSvc service.PushService,
	publisher service.EventPublisher,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:         logger,
		loc:            loc,
		interUserDelay: cfg.Notification.InterUserDelay,
		tokenUC:        tokenUC,
		attendanceUC:   attendanceUC,
		timetableRepo:  timetableRepo,
		pushSvc:        pushSvc,
		publisher:      publisher,
		now:            time.Now,
	}
}

// batchOutcome accumulates counts across the ≤500-token chunks of one send.
type batchOutcome struct {
	attempted      int
	successCount   int
	failureCount   int
	invalidRemoved int
	err            error
}

// sendBatches multicasts msg to the given tokens in transport-sized chunks,
// then removes the tokens the transport reported invalid. A chunk-level
// transport error is recorded and counted as failures for that chunk; the
// remaining chunks still go out.
func (s *dispatchService) sendBatches(ctx context.Context, tokens []*entity.DeviceToken, msg *entity.NotificationMessage) batchOutcome {
	outcome := batchOutcome{attempted: len(tokens)}

	tokenStrings := make([]string, 0, len(tokens))
	for _, token := range tokens {
		tokenStrings = append(tokenStrings, token.Token)
	}

	var invalid []string
	for i := 0; i < len(tokenStrings); i += fcmBatchSize {
		end := min(i+fcmBatchSize, len(tokenStrings))
		chunk := tokenStrings[i:end]

		result, err := s.pushSvc.SendBatch(ctx, chunk, msg)
		if err != nil {
			outcome.failureCount += len(chunk)
			outcome.err = err
			s.logger.Error("multicast send failed for batch",
				slog.Int("batch_size", len(chunk)),
				slog.Any("error", err),
			)

			continue
		}

		outcome.successCount += result.SuccessCount
		outcome.failureCount += result.FailureCount
		invalid = append(invalid, result.InvalidTokens...)
	}

	if len(invalid) > 0 {
		outcome.invalidRemoved = s.tokenUC.CleanupInvalid(ctx, invalid)
	}

	return outcome
}

// SendToUser sends a message to every token of one user. "No tokens" is an
// expected condition, reported as a non-success result rather than an error.
func (s *dispatchService) SendToUser(ctx context.Context, userID string, msg *entity.NotificationMessage) *usecase.DispatchResult {
	tokens, err := s.tokenUC.GetUserTokens(ctx, userID)
	if err != nil {
		return s.published(ctx, "user", userID, &usecase.DispatchResult{
			Success: false,
			Error:   err.Error(),
		})
	}

	if len(tokens) == 0 {
		return s.published(ctx, "user", userID, &usecase.DispatchResult{
			Success: false,
			Message: "no push tokens registered for user",
		})
	}

	if msg == nil {
		msg = s.composeDailyFor(ctx, userID)
	}

	outcome := s.sendBatches(ctx, tokens, msg)

	result := &usecase.DispatchResult{
		Success:              outcome.successCount > 0,
		TokensAttempted:      outcome.attempted,
		SuccessCount:         outcome.successCount,
		FailureCount:         outcome.failureCount,
		InvalidTokensRemoved: outcome.invalidRemoved,
		UsersNotified:        1,
	}
	if outcome.err != nil {
		result.Error = outcome.err.Error()
	}

	return s.published(ctx, "user", userID, result)
}

// SendToAll sends one message to every token in the store, ungrouped. Used
// for broadcast announcements.
func (s *dispatchService) SendToAll(ctx context.Context, msg *entity.NotificationMessage) *usecase.DispatchResult {
	tokens, err := s.tokenUC.GetAllTokens(ctx)
	if err != nil {
		return s.published(ctx, "broadcast", "", &usecase.DispatchResult{
			Success: false,
			Error:   err.Error(),
		})
	}

	if len(tokens) == 0 {
		return s.published(ctx, "broadcast", "", &usecase.DispatchResult{
			Success: false,
			Message: "no push tokens registered",
		})
	}

	if msg == nil {
		msg = ComposeBroadcast()
	}

	outcome := s.sendBatches(ctx, tokens, msg)

	result := &usecase.DispatchResult{
		Success:              outcome.successCount > 0,
		TokensAttempted:      outcome.attempted,
		SuccessCount:         outcome.successCount,
		FailureCount:         outcome.failureCount,
		InvalidTokensRemoved: outcome.invalidRemoved,
	}
	if outcome.err != nil {
		result.Error = outcome.err.Error()
	}

	return s.published(ctx, "broadcast", "", result)
}

// SendDailyReminders sends each user a personalized reminder built from
// tomorrow's timetable and current attendance. Users are processed in the
// order their tokens were first seen; one user's failure is isolated.
func (s *dispatchService) SendDailyReminders(ctx context.Context) *usecase.DispatchResult {
	tokens, err := s.tokenUC.GetAllTokens(ctx)
	if err != nil {
		return s.published(ctx, "daily", "", &usecase.DispatchResult{
			Success: false,
			Error:   err.Error(),
		})
	}

	userIDs, grouped, skipped := groupByOwner(tokens)
	if skipped > 0 {
		s.logger.Warn("skipping tokens without an owning user",
			slog.Int("count", skipped),
		)
	}

	result := &usecase.DispatchResult{
		Success:          true,
		OwnerlessSkipped: skipped,
	}

	for i, userID := range userIDs {
		detail := s.remindUser(ctx, userID, grouped[userID])
		result.Details = append(result.Details, detail)
		result.TokensAttempted += detail.TokensAttempted
		result.SuccessCount += detail.SuccessCount
		result.FailureCount += detail.FailureCount
		result.InvalidTokensRemoved += detail.InvalidTokensRemoved
		if detail.SuccessCount > 0 {
			result.UsersNotified++
		}

		// Pause between users so a large token store does not hammer the
		// transport; not an ordering guarantee.
		if s.interUserDelay > 0 && i < len(userIDs)-1 {
			time.Sleep(s.interUserDelay)
		}
	}

	return s.published(ctx, "daily", "", result)
}

// remindUser composes and sends the daily reminder for one user, converting
// any failure into a detail entry so the caller's loop keeps going.
func (s *dispatchService) remindUser(ctx context.Context, userID string, tokens []*entity.DeviceToken) usecase.UserDispatchDetail {
	msg := s.composeDailyFor(ctx, userID)
	outcome := s.sendBatches(ctx, tokens, msg)

	detail := usecase.UserDispatchDetail{
		UserID:               userID,
		TokensAttempted:      outcome.attempted,
		SuccessCount:         outcome.successCount,
		FailureCount:         outcome.failureCount,
		InvalidTokensRemoved: outcome.invalidRemoved,
	}
	if outcome.err != nil {
		detail.Error = outcome.err.Error()
	}

	return detail
}

// composeDailyFor assembles the personalized daily message. Timetable read
// failures degrade to the no-class report rather than failing the user.
func (s *dispatchService) composeDailyFor(ctx context.Context, userID string) *entity.NotificationMessage {
	snapshot := s.attendanceUC.Snapshot(ctx, userID)

	tomorrow := schedule.TomorrowDayName(s.now(), s.loc)
	classes, err := s.timetableRepo.FindByUserAndDay(ctx, userID, tomorrow)
	if err != nil {
		s.logger.Warn("timetable read failed, composing without classes",
			slog.String("user_id", userID),
			slog.String("day", tomorrow),
			slog.Any("error", err),
		)
		classes = nil
	}

	return ComposeDaily(snapshot, classes)
}

// SendClassReminders notifies every user with a class starting minutesBefore
// minutes from now, one notification per matching class.
func (s *dispatchService) SendClassReminders(ctx context.Context, minutesBefore int) *usecase.DispatchResult {
	tokens, err := s.tokenUC.GetAllTokens(ctx)
	if err != nil {
		return s.published(ctx, "class", "", &usecase.DispatchResult{
			Success: false,
			Error:   err.Error(),
		})
	}

	userIDs, grouped, skipped := groupByOwner(tokens)
	if skipped > 0 {
		s.logger.Warn("skipping tokens without an owning user",
			slog.Int("count", skipped),
		)
	}

	now := s.now()
	today := schedule.DayName(now, s.loc)

	result := &usecase.DispatchResult{
		Success:          true,
		OwnerlessSkipped: skipped,
	}

	for _, userID := range userIDs {
		entries, err := s.timetableRepo.FindByUserAndDay(ctx, userID, today)
		if err != nil {
			s.logger.Warn("timetable read failed, skipping user",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
			result.Details = append(result.Details, usecase.UserDispatchDetail{
				UserID: userID,
				Error:  err.Error(),
			})

			continue
		}

		var matching []*entity.TimetableEntry
		for _, entry := range entries {
			if schedule.StartsWithin(entry.StartTime, minutesBefore, now, s.loc) {
				matching = append(matching, entry)
			}
		}
		if len(matching) == 0 {
			continue
		}

		snapshot := s.attendanceUC.Snapshot(ctx, userID)
		detail := usecase.UserDispatchDetail{UserID: userID}

		// A user with two classes in the same window gets two reminders.
		for _, class := range matching {
			outcome := s.sendBatches(ctx, grouped[userID], ComposeClassReminder(class, minutesBefore, snapshot))
			detail.TokensAttempted += outcome.attempted
			detail.SuccessCount += outcome.successCount
			detail.FailureCount += outcome.failureCount
			detail.InvalidTokensRemoved += outcome.invalidRemoved
			if outcome.err != nil {
				detail.Error = outcome.err.Error()
			}
		}

		result.Details = append(result.Details, detail)
		result.TokensAttempted += detail.TokensAttempted
		result.SuccessCount += detail.SuccessCount
		result.FailureCount += detail.FailureCount
		result.InvalidTokensRemoved += detail.InvalidTokensRemoved
		if detail.SuccessCount > 0 {
			result.UsersNotified++
		}
	}

	return s.published(ctx, "class", "", result)
}

// published emits the dispatch event for a finished run and passes the
// result through. Publishing is best effort; a broker problem never fails a
// dispatch that already happened.
func (s *dispatchService) published(ctx context.Context, kind, userID string, result *usecase.DispatchResult) *usecase.DispatchResult {
	event := &service.DispatchEvent{
		Kind:          kind,
		UserID:        userID,
		UsersNotified: result.UsersNotified,
		SuccessCount:  result.SuccessCount,
		FailureCount:  result.FailureCount,
		InvalidTokens: result.InvalidTokensRemoved,
		CompletedAt:   s.now(),
	}

	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish dispatch event",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
	}

	return result
}

// groupByOwner buckets tokens by owning user, preserving the order each
// user was first seen. Ownerless tokens are skipped and counted; whether
// those are intentional anonymous registrations or a data-quality gap is an
// upstream question, so the count stays visible in logs and results.
func groupByOwner(tokens []*entity.DeviceToken) (userIDs []string, grouped map[string][]*entity.DeviceToken, skipped int) {
	grouped = make(map[string][]*entity.DeviceToken)
	for _, token := range tokens {
		if token.UserID == "" {
			skipped++

			continue
		}
		if _, seen := grouped[token.UserID]; !seen {
			userIDs = append(userIDs, token.UserID)
		}
		grouped[token.UserID] = append(grouped[token.UserID], token)
	}

	return userIDs, grouped, skipped
}

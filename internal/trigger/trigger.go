// Package trigger implements the scheduling process that drives the
// dispatch engine through its HTTP boundary. It runs independent timers
// for the daily reminder sweep and the near-term class checks; the timers
// share no state and a stuck call on one never blocks the others.
package trigger

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"classping/config"
	"classping/internal/delivery"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultDailyAt        = "20:00"
	defaultRequestTimeout = 30 * time.Second
)

var defaultReminderOffsets = []int{30, 10}

type TriggerParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Location *time.Location
}

type cronTrigger struct {
	logger  *slog.Logger
	loc     *time.Location
	baseURL string
	dailyAt string
	offsets []int
	client  *http.Client

	stop chan struct{}
}

// New creates the scheduling trigger. It validates the target configuration
// up front so a misconfigured runner fails at startup, not at first fire.
func New(params TriggerParams) (delivery.Delivery, error) {
	cfg := params.Config.Trigger
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("trigger.baseUrl is required")
	}

	dailyAt := cfg.DailyAt
	if dailyAt == "" {
		dailyAt = defaultDailyAt
	}
	if _, _, err := parseDailyAt(dailyAt); err != nil {
		return nil, err
	}

	offsets := cfg.ReminderOffsets
	if len(offsets) == 0 {
		offsets = defaultReminderOffsets
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	trigger := &cronTrigger{
		logger:  params.Logger,
		loc:     params.Location,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		dailyAt: dailyAt,
		offsets: offsets,
		client:  &http.Client{Timeout: timeout},
		stop:    make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: trigger.shutdown,
	})

	return trigger, nil
}

// Serve runs the schedule timers until the application stops.
func (t *cronTrigger) Serve(ctx context.Context) error {
	t.logger.Info("Starting scheduling trigger",
		slog.String("baseURL", t.baseURL),
		slog.String("dailyAt", t.dailyAt),
		slog.String("timezone", t.loc.String()),
		slog.Any("reminderOffsets", t.offsets),
	)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		t.runDaily(ctx)
	}()

	for _, offset := range t.offsets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.runClassReminders(ctx, offset)
		}()
	}

	wg.Wait()

	return nil
}

func (t *cronTrigger) shutdown(ctx context.Context) error {
	t.logger.Info("Shutting down scheduling trigger")
	close(t.stop)

	return nil
}

// runDaily fires the daily reminder sweep at the configured wall-clock time
// in the reference timezone.
func (t *cronTrigger) runDaily(ctx context.Context) {
	hour, minute, _ := parseDailyAt(t.dailyAt)

	for {
		next := t.nextDailyFire(time.Now().In(t.loc), hour, minute)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-t.stop:
			timer.Stop()
			return
		case <-timer.C:
			t.call(ctx, http.MethodPost, "/send-daily-reminders")
		}
	}
}

// nextDailyFire returns the next occurrence of hour:minute after now. A
// fire time earlier in the current day rolls over to tomorrow.
func (t *cronTrigger) nextDailyFire(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, t.loc)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}

	return next
}

// runClassReminders polls once a minute for classes starting offset minutes
// out. The narrow tolerance window on the engine side keeps a double fire
// from producing more than an occasional duplicate.
func (t *cronTrigger) runClassReminders(ctx context.Context, offset int) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.call(ctx, http.MethodGet, "/send-class-reminders?minutesBefore="+strconv.Itoa(offset))
		}
	}
}

// call issues one HTTP request into the dispatch engine. Failures are logged
// and swallowed; the scheduler must outlive a transiently unreachable
// service.
func (t *cronTrigger) call(ctx context.Context, method, path string) {
	url := t.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		t.logger.Error("Failed to build trigger request",
			slog.String("url", url),
			slog.Any("error", err),
		)
		return
	}

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Warn("Trigger call failed, will retry on next tick",
			slog.String("url", url),
			slog.Any("error", err),
		)
		return
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("Trigger call returned error status",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return
	}

	t.logger.Info("Trigger call completed",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
	)
}

// parseDailyAt parses an "HH:MM" 24-hour wall-clock time.
func parseDailyAt(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid dailyAt %q, expected HH:MM", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errors.Errorf("invalid dailyAt hour %q", parts[0])
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errors.Errorf("invalid dailyAt minute %q", parts[1])
	}

	return hour, minute, nil
}

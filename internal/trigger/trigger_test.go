package trigger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDailyAt(t *testing.T) {
	tests := []struct {
		value  string
		hour   int
		minute int
		ok     bool
	}{
		{"20:00", 20, 0, true},
		{"00:05", 0, 5, true},
		{"23:59", 23, 59, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"8pm", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			hour, minute, err := parseDailyAt(tt.value)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestNextDailyFire(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	trigger := &cronTrigger{loc: loc}

	now := time.Date(2025, 3, 10, 18, 30, 0, 0, loc)

	// Fire time still ahead today.
	next := trigger.nextDailyFire(now, 20, 0)
	assert.Equal(t, time.Date(2025, 3, 10, 20, 0, 0, 0, loc), next)

	// Fire time already passed rolls over to tomorrow.
	next = trigger.nextDailyFire(now, 8, 0)
	assert.Equal(t, time.Date(2025, 3, 11, 8, 0, 0, 0, loc), next)

	// Exactly at the fire time schedules tomorrow, not an immediate refire.
	atFire := time.Date(2025, 3, 10, 20, 0, 0, 0, loc)
	next = trigger.nextDailyFire(atFire, 20, 0)
	assert.Equal(t, time.Date(2025, 3, 11, 20, 0, 0, 0, loc), next)
}

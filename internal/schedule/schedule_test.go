package schedule

import (
	"testing"
	"time"

	"classping/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12:00 AM", "00:00"},
		{"12:00 PM", "12:00"},
		{"01:30 PM", "13:30"},
		{"1:30 PM", "13:30"},
		{"11:59 PM", "23:59"},
		{"09:05 AM", "09:05"},
		{"12:45 AM", "00:45"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := To24Hour(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTo24Hour_Malformed(t *testing.T) {
	for _, in := range []string{"", "13:00 PM", "09:60 AM", "9 AM", "09:05am", "09:05  AM", "0:30 PM"} {
		t.Run(in, func(t *testing.T) {
			_, err := To24Hour(in)
			assert.Error(t, err)
		})
	}
}

func TestTomorrowDayName(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 2025-06-02 10:00 IST is a Monday.
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)
	assert.Equal(t, "Monday", DayName(now, loc))
	assert.Equal(t, "Tuesday", TomorrowDayName(now, loc))

	// Late evening UTC can already be tomorrow in IST.
	utcEvening := time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tuesday", DayName(utcEvening, loc))
	assert.Equal(t, "Wednesday", TomorrowDayName(utcEvening, loc))
}

func TestStartsWithin_Window(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, loc)

	cases := []struct {
		start string
		want  bool
	}{
		{"09:28 AM", false},
		{"09:29 AM", true},
		{"09:30 AM", true},
		{"09:31 AM", true},
		{"09:32 AM", false},
	}

	for _, tc := range cases {
		t.Run(tc.start, func(t *testing.T) {
			assert.Equal(t, tc.want, StartsWithin(tc.start, 30, now, loc))
		})
	}
}

func TestStartsWithin_PastAndMalformed(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, loc)

	assert.False(t, StartsWithin("08:30 AM", 30, now, loc), "past class must not match")
	assert.False(t, StartsWithin("not a time", 30, now, loc), "malformed entry must be skipped, not panic")
}

func TestSortByStartTime(t *testing.T) {
	entries := []*entity.TimetableEntry{
		{Subject: "Physics", StartTime: "02:00 PM"},
		{Subject: "Maths", StartTime: "09:00 AM"},
		{Subject: "Broken", StartTime: "25:00 XM"},
		{Subject: "Chemistry", StartTime: "12:15 PM"},
	}

	sorted := SortByStartTime(entries)

	require.Len(t, sorted, 3)
	assert.Equal(t, "Maths", sorted[0].Subject)
	assert.Equal(t, "Chemistry", sorted[1].Subject)
	assert.Equal(t, "Physics", sorted[2].Subject)
}

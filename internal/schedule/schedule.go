// Package schedule contains the pure time and timetable helpers used by the
// dispatch engine: 12-hour clock parsing, day-name computation in the
// reference timezone, and the "class starting soon" window check.
package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"classping/internal/domain/entity"

	"github.com/pkg/errors"
)

// clock12Pattern matches "H:MM AM" / "HH:MM PM" exactly. Anything else is a
// malformed client entry and is excluded from scheduling decisions.
var clock12Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (AM|PM)$`)

// To24Hour converts a 12-hour "HH:MM AM/PM" time string to zero-padded
// 24-hour "HH:MM" form. 12 AM maps to 00, 12 PM stays 12, other PM hours
// gain 12.
func To24Hour(value string) (string, error) {
	match := clock12Pattern.FindStringSubmatch(value)
	if match == nil {
		return "", errors.Errorf("malformed 12-hour time %q", value)
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return "", errors.Wrapf(err, "parse hour in %q", value)
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return "", errors.Wrapf(err, "parse minute in %q", value)
	}

	if hour < 1 || hour > 12 || minute > 59 {
		return "", errors.Errorf("out-of-range 12-hour time %q", value)
	}

	switch {
	case match[3] == "AM" && hour == 12:
		hour = 0
	case match[3] == "PM" && hour != 12:
		hour += 12
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// DayName returns the weekday name of t in the given timezone.
func DayName(t time.Time, loc *time.Location) string {
	return t.In(loc).Weekday().String()
}

// TomorrowDayName returns the weekday name of now + 1 day in the given
// timezone.
func TomorrowDayName(now time.Time, loc *time.Location) string {
	return DayName(now.Add(24*time.Hour), loc)
}

// StartsWithin reports whether a class starting at the 12-hour time start
// (interpreted on now's date in loc) begins minutesBefore minutes from now,
// within a ±1 minute tolerance. The tolerance exists because the trigger
// fires at fixed minute granularity and wall-clock jitter must not cause a
// missed reminder.
func StartsWithin(start string, minutesBefore int, now time.Time, loc *time.Location) bool {
	instant, err := instantOn(now, start, loc)
	if err != nil {
		return false
	}

	minutes := int(instant.Sub(now).Minutes()) // floor for positive deltas
	if instant.Before(now) {
		return false
	}

	return minutes >= minutesBefore-1 && minutes <= minutesBefore+1
}

// instantOn anchors a 12-hour time string on the calendar date of ref in loc.
func instantOn(ref time.Time, start string, loc *time.Location) (time.Time, error) {
	clock, err := To24Hour(start)
	if err != nil {
		return time.Time{}, err
	}

	hour, _ := strconv.Atoi(clock[:2])
	minute, _ := strconv.Atoi(clock[3:])
	local := ref.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc), nil
}

// SortByStartTime returns the entries ordered chronologically by start time.
// The 24-hour form is zero-padded, so lexicographic order is chronological
// order. Entries with malformed start times are excluded rather than
// aborting the whole batch.
func SortByStartTime(entries []*entity.TimetableEntry) []*entity.TimetableEntry {
	type keyed struct {
		key   string
		entry *entity.TimetableEntry
	}

	valid := make([]keyed, 0, len(entries))
	for _, entry := range entries {
		key, err := To24Hour(entry.StartTime)
		if err != nil {
			continue
		}
		valid = append(valid, keyed{key: key, entry: entry})
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].key < valid[j].key
	})

	sorted := make([]*entity.TimetableEntry, 0, len(valid))
	for _, k := range valid {
		sorted = append(sorted, k.entry)
	}

	return sorted
}

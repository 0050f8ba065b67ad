package impl

import (
	"testing"

	"classping/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWith(percentage, minimum int) entity.AttendanceSnapshot {
	return entity.AttendanceSnapshot{
		UserID:          "user-1",
		Percentage:      percentage,
		MinimumRequired: minimum,
		TotalClasses:    100,
		AttendedClasses: percentage,
	}
}

func TestComposeDaily_NoClasses_ExcellentTier(t *testing.T) {
	msg := ComposeDaily(snapshotWith(90, 75), nil)

	assert.Equal(t, "Excellent attendance!", msg.Title)
	assert.Contains(t, msg.Body, "90%")
	assert.Contains(t, msg.Body, "75%")
}

func TestComposeDaily_NoClasses_GoodTier(t *testing.T) {
	msg := ComposeDaily(snapshotWith(80, 75), nil)

	assert.Equal(t, "Good attendance", msg.Title)
	assert.Contains(t, msg.Body, "80%")
}

func TestComposeDaily_NoClasses_AlertTier(t *testing.T) {
	msg := ComposeDaily(snapshotWith(70, 75), nil)

	assert.Equal(t, "Attendance alert", msg.Title)
	assert.Contains(t, msg.Body, "70%")
}

func TestComposeDaily_NoClasses_WarningTierNamesGap(t *testing.T) {
	msg := ComposeDaily(snapshotWith(50, 75), nil)

	assert.Equal(t, "Low attendance warning", msg.Title)
	// The gap to the target is spelled out for the user.
	assert.Contains(t, msg.Body, "need 25% more")
}

func TestComposeDaily_NoClasses_ZeroPercentOnboarding(t *testing.T) {
	msg := ComposeDaily(snapshotWith(0, 75), nil)

	assert.Equal(t, "Set up your attendance", msg.Title)
}

func TestComposeDaily_TierBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		percentage int
		title      string
	}{
		{"exactly excellent margin", 90, "Excellent attendance!"},
		{"one below excellent margin", 89, "Good attendance"},
		{"exactly minimum", 75, "Good attendance"},
		{"one below minimum", 74, "Attendance alert"},
		{"exactly alert floor", 65, "Attendance alert"},
		{"one below alert floor", 64, "Low attendance warning"},
		{"one percent", 1, "Low attendance warning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ComposeDaily(snapshotWith(tt.percentage, 75), nil)
			assert.Equal(t, tt.title, msg.Title)
		})
	}
}

func TestComposeDaily_AnnouncesFirstClassChronologically(t *testing.T) {
	classes := []*entity.TimetableEntry{
		{Subject: "Maths", ClassType: entity.ClassTypeLecture, StartTime: "11:00 AM"},
		{Subject: "Physics", ClassType: entity.ClassTypeLecture, StartTime: "09:00 AM"},
	}

	msg := ComposeDaily(snapshotWith(80, 75), classes)

	require.Contains(t, msg.Title, "Physics")
	assert.Equal(t, "Physics", msg.Data["subject"])
	assert.Equal(t, "09:00 AM", msg.Data["start_time"])
	assert.Equal(t, "2", msg.Data["class_count"])
}

func TestComposeDaily_PrefersLabOverEarlierLecture(t *testing.T) {
	classes := []*entity.TimetableEntry{
		{Subject: "Maths", ClassType: entity.ClassTypeLecture, StartTime: "09:00 AM"},
		{Subject: "Chemistry", ClassType: entity.ClassTypeLab, StartTime: "02:00 PM"},
	}

	msg := ComposeDaily(snapshotWith(80, 75), classes)

	assert.Contains(t, msg.Title, "Lab tomorrow")
	assert.Contains(t, msg.Title, "Chemistry")
	assert.Equal(t, string(entity.ClassTypeLab), msg.Data["class_type"])
}

func TestComposeDaily_BelowMinimumAppendsWarning(t *testing.T) {
	classes := []*entity.TimetableEntry{
		{Subject: "Maths", ClassType: entity.ClassTypeLecture, StartTime: "09:00 AM"},
	}

	msg := ComposeDaily(snapshotWith(60, 75), classes)

	assert.Contains(t, msg.Body, "below your 75% target")
	assert.Contains(t, msg.Body, "don't miss it")
}

func TestComposeDaily_AtMinimumNoWarning(t *testing.T) {
	classes := []*entity.TimetableEntry{
		{Subject: "Maths", ClassType: entity.ClassTypeLecture, StartTime: "09:00 AM"},
	}

	msg := ComposeDaily(snapshotWith(75, 75), classes)

	assert.NotContains(t, msg.Body, "below")
}

func TestComposeDaily_MalformedTimesFallBackToReport(t *testing.T) {
	classes := []*entity.TimetableEntry{
		{Subject: "Maths", ClassType: entity.ClassTypeLecture, StartTime: "9 o'clock"},
	}

	msg := ComposeDaily(snapshotWith(80, 75), classes)

	// Every entry was unparseable, so the day reads as class-free.
	assert.Equal(t, "Good attendance", msg.Title)
}

func TestComposeClassReminder(t *testing.T) {
	class := &entity.TimetableEntry{
		Subject:   "Physics",
		ClassType: entity.ClassTypeLecture,
		StartTime: "10:30 AM",
	}

	msg := ComposeClassReminder(class, 30, snapshotWith(82, 75))

	assert.Equal(t, "Physics starts in 30 minutes", msg.Title)
	assert.Contains(t, msg.Body, "10:30 AM")
	assert.Contains(t, msg.Body, "82%")
	assert.Equal(t, "30", msg.Data["minutes_before"])
	assert.Equal(t, "class", msg.Data["kind"])
}

func TestComposeBroadcast(t *testing.T) {
	msg := ComposeBroadcast()

	assert.Equal(t, "ClassPing", msg.Title)
	assert.Equal(t, "broadcast", msg.Data["kind"])
}

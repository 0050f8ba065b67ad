package impl

import (
	"fmt"
	"strconv"

	"classping/internal/domain/entity"
	"classping/internal/schedule"
)

// Tier spacing for the no-class daily report. Excellent starts 15 points
// above the user's minimum; the alert band reaches 10 points below it.
const (
	excellentMargin = 15
	alertMargin     = 10
)

// ComposeDaily builds the personalized daily reminder for one user from
// tomorrow's class list and the current attendance snapshot.
//
// With no classes the message is a report over five tiers of percentage
// against the user's minimum. With classes it announces the first class
// chronologically, preferring a lab when the day has one, and appends a
// warning when attendance sits below the minimum.
func ComposeDaily(snapshot entity.AttendanceSnapshot, classes []*entity.TimetableEntry) *entity.NotificationMessage {
	sorted := schedule.SortByStartTime(classes)
	if len(sorted) == 0 {
		return composeDailyReport(snapshot)
	}

	announce := sorted[0]
	for _, class := range sorted {
		if class.ClassType == entity.ClassTypeLab {
			announce = class

			break
		}
	}

	var title, body string
	if announce.ClassType == entity.ClassTypeLab {
		title = fmt.Sprintf("Lab tomorrow: %s", announce.Subject)
		body = fmt.Sprintf("Your %s lab starts at %s.", announce.Subject, announce.StartTime)
	} else {
		title = fmt.Sprintf("Class tomorrow: %s", announce.Subject)
		body = fmt.Sprintf("Your first class is %s (%s) at %s.", announce.Subject, announce.ClassType, announce.StartTime)
	}

	if snapshot.Percentage < snapshot.MinimumRequired {
		body += fmt.Sprintf(" You're at %d%%, below your %d%% target - don't miss it!",
			snapshot.Percentage, snapshot.MinimumRequired)
	}

	msg := &entity.NotificationMessage{
		Title: title,
		Body:  body,
		Data:  dailyData(snapshot),
	}
	msg.Data["class_count"] = strconv.Itoa(len(sorted))
	msg.Data["subject"] = announce.Subject
	msg.Data["start_time"] = announce.StartTime
	msg.Data["class_type"] = string(announce.ClassType)

	return msg
}

// composeDailyReport handles the no-class tiers, evaluated in order.
func composeDailyReport(snapshot entity.AttendanceSnapshot) *entity.NotificationMessage {
	p, m := snapshot.Percentage, snapshot.MinimumRequired

	var title, body string
	switch {
	case p >= m+excellentMargin:
		title = "Excellent attendance!"
		body = fmt.Sprintf("You're at %d%%, well above your %d%% target. No classes tomorrow - enjoy the break!", p, m)
	case p >= m:
		title = "Good attendance"
		body = fmt.Sprintf("You're at %d%%, on track with your %d%% target. No classes tomorrow.", p, m)
	case p >= m-alertMargin && p > 0:
		title = "Attendance alert"
		body = fmt.Sprintf("You're at %d%%, just below your %d%% target. Attend your next classes to get back on track.", p, m)
	case p > 0:
		title = "Low attendance warning"
		body = fmt.Sprintf("You're at %d%% and need %d%% more to reach your %d%% target.", p, m-p, m)
	default:
		title = "Set up your attendance"
		body = "Add your subjects and start marking attendance to get personalized reminders."
	}

	return &entity.NotificationMessage{
		Title: title,
		Body:  body,
		Data:  dailyData(snapshot),
	}
}

// ComposeClassReminder builds the short "starting soon" message for one
// class, enriched with the current attendance percentage.
func ComposeClassReminder(class *entity.TimetableEntry, minutesBefore int, snapshot entity.AttendanceSnapshot) *entity.NotificationMessage {
	return &entity.NotificationMessage{
		Title: fmt.Sprintf("%s starts in %d minutes", class.Subject, minutesBefore),
		Body: fmt.Sprintf("%s (%s) at %s. Current attendance: %d%%.",
			class.Subject, class.ClassType, class.StartTime, snapshot.Percentage),
		Data: map[string]string{
			"kind":             "class",
			"subject":          class.Subject,
			"class_type":       string(class.ClassType),
			"start_time":       class.StartTime,
			"minutes_before":   strconv.Itoa(minutesBefore),
			"percentage":       strconv.Itoa(snapshot.Percentage),
			"minimum_required": strconv.Itoa(snapshot.MinimumRequired),
		},
	}
}

// ComposeBroadcast is the fallback for broadcast sends without an explicit
// message.
func ComposeBroadcast() *entity.NotificationMessage {
	return &entity.NotificationMessage{
		Title: "ClassPing",
		Body:  "You have a new announcement.",
		Data:  map[string]string{"kind": "broadcast"},
	}
}

func dailyData(snapshot entity.AttendanceSnapshot) map[string]string {
	return map[string]string{
		"kind":             "daily",
		"percentage":       strconv.Itoa(snapshot.Percentage),
		"minimum_required": strconv.Itoa(snapshot.MinimumRequired),
		"total_classes":    strconv.Itoa(snapshot.TotalClasses),
		"attended_classes": strconv.Itoa(snapshot.AttendedClasses),
	}
}

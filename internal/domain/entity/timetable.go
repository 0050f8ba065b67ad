package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClassType classifies a timetable entry.
type ClassType string

const (
	ClassTypeLecture   ClassType = "lecture"
	ClassTypeLab       ClassType = "lab"
	ClassTypeTutorial  ClassType = "tutorial"
	ClassTypePractical ClassType = "practical"
	ClassTypeSeminar   ClassType = "seminar"
)

// TimetableEntry represents one scheduled class for a user.
// Start and end times are stored in 12-hour "HH:MM AM/PM" form as entered
// by the client.
type TimetableEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Day       string    `json:"day"` // Day-of-week name, e.g. "Monday".
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Subject   string    `json:"subject"`
	ClassType ClassType `json:"class_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

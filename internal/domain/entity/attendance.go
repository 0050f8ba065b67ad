package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMinimumAttendance is the required attendance percentage used when a
// user has not stored a preference.
const DefaultMinimumAttendance = 75

// SubjectRecord holds the per-subject class counters for a user.
type SubjectRecord struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	TotalClasses    int       `json:"total_classes"`
	AttendedClasses int       `json:"attended_classes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AttendanceSnapshot is the aggregated attendance view for a single user at
// dispatch time. It is derived, never persisted.
type AttendanceSnapshot struct {
	UserID          string `json:"user_id"`
	Percentage      int    `json:"percentage"`
	MinimumRequired int    `json:"minimum_required"`
	TotalClasses    int    `json:"total_classes"`
	AttendedClasses int    `json:"attended_classes"`
}

// DefaultSnapshot returns the safe fallback used when a user's attendance
// data cannot be read. Dispatch for other users must not be blocked by one
// user's data-access failure.
func DefaultSnapshot(userID string) AttendanceSnapshot {
	return AttendanceSnapshot{
		UserID:          userID,
		Percentage:      0,
		MinimumRequired: DefaultMinimumAttendance,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimetableEntryModel is the GORM-specific struct for the 'timetable_entries'
// table. Times are kept in the client's 12-hour string form; the schedule
// package normalizes them when ordering or window-checking.
type TimetableEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:varchar(128);not null;index:idx_timetable_user_day"`
	Day       string    `gorm:"type:varchar(16);not null;index:idx_timetable_user_day"`
	StartTime string    `gorm:"type:varchar(16);not null"`
	EndTime   string    `gorm:"type:varchar(16);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	ClassType string    `gorm:"type:varchar(32);not null;default:'lecture'"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}

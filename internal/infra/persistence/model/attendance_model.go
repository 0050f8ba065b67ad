package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel is the GORM-specific struct for the 'subjects' table, holding
// the per-subject class counters maintained by the mobile client.
type SubjectModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          string    `gorm:"type:varchar(128);not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	TotalClasses    int       `gorm:"not null;default:0"`
	AttendedClasses int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectModel) TableName() string {
	return "subjects"
}

// UserPreferenceModel is the GORM-specific struct for the 'user_preferences'
// table. MinimumAttendance is the user's required attendance percentage.
type UserPreferenceModel struct {
	UserID            string `gorm:"type:varchar(128);primary_key"`
	MinimumAttendance int    `gorm:"not null;default:75"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}

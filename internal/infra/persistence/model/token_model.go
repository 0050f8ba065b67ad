package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// One row per (user, device); the token string itself is unique across the
// table so cleanup can delete by token. Rows are hard-deleted: a removed
// device must be able to re-register under the same (user, device) key, and
// a token string freed by cleanup must be reusable immediately.
type DeviceTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:varchar(128);index;uniqueIndex:idx_device_tokens_user_device"`
	Token     string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_tokens_user_device"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken represents a push-transport token registered by a client device.
type DeviceToken struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the token record.
	UserID    string    `json:"user_id"`    // The ID of the user who owns this token. May be empty for anonymous registrations.
	Token     string    `json:"token"`      // Opaque push-transport token (FCM registration token or Expo push token).
	DeviceID  string    `json:"device_id"`  // Unique device identifier from the client.
	IsActive  bool      `json:"is_active"`  // Indicates if this token is active for notifications.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this token was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms accepted at registration.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformWeb     = "web"
)

// UserDevice is a staff device registered for push delivery of notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // Owner of the device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"`  // Client-generated device identifier.
	Platform  string    `json:"platform"`   // android, ios or web.
	IsActive  bool      `json:"is_active"`  // Cleared when FCM reports the token invalid.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Pushable reports whether the device should receive push messages.
func (d *UserDevice) Pushable() bool {
	return d.IsActive && d.FCMToken != ""
}

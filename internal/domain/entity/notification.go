// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType groups notifications for the client UI.
type NotificationType string

const (
	NotificationTypeSystem NotificationType = "system"
	NotificationTypeOrder  NotificationType = "order"
	NotificationTypeShift  NotificationType = "shift"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeSystem, NotificationTypeOrder, NotificationTypeShift:
		return true
	default:
		return false
	}
}

// Notification is a per-user message record.
type Notification struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID        `json:"user_id"`    // Recipient.
	Message   string           `json:"message"`    // Human readable text.
	IsRead    bool             `json:"is_read"`    // Only ever flips false -> true.
	Type      NotificationType `json:"type"`       // system, order or shift.
	Timestamp time.Time        `json:"timestamp"`  // Timestamp of when the notification was created.
	UpdatedAt time.Time        `json:"updated_at"` // Timestamp of the last modification.
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the persistence operations of per-user notifications.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListByUser retrieves a user's notifications, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnread counts a user's unread notifications.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead sets is_read on one notification. Already read rows are left untouched.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead sets is_read on all of a user's unread notifications and returns the affected count.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

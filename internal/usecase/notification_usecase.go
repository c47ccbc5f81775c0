package usecase

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// Notify stores one notification for userID and pushes it to the user's devices
	Notify(ctx context.Context, userID uuid.UUID, message string, notificationType entity.NotificationType) (*entity.Notification, error)

	// NotifyRole notifies every active user with role and returns how many were notified
	NotifyRole(ctx context.Context, role entity.Role, message string, notificationType entity.NotificationType) (int, error)

	// MarkRead marks one of the user's notifications as read
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks all of the user's notifications as read
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListForUser retrieves the user's notifications with pagination
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnread counts the user's unread notifications
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"drinkpos/config"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pusher           *devicePusher
	feed             service.ChangeFeed
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	DeviceRepo       repository.DeviceRepository
	NotificationSvc  service.NotificationService
	Feed             service.ChangeFeed
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		pusher:           newDevicePusher(params.DeviceRepo, params.NotificationSvc, shopName(params.Config), params.Logger),
		feed:             params.Feed,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Notify stores one notification and pushes it to the user's devices
func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, message string, notificationType entity.NotificationType) (*entity.Notification, error) {
	notification, err := newNotification(userID, message, notificationType)
	if err != nil {
		return nil, err
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	publishChanges(ctx, s.feed, s.logger, service.NotificationsTopic(userID.String()))
	s.pusher.push(ctx, notification)

	return notification, nil
}

// NotifyRole fans out one notification per active user holding role at call time
func (s *notificationService) NotifyRole(ctx context.Context, role entity.Role, message string, notificationType entity.NotificationType) (int, error) {
	if !role.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid role")
	}

	active := entity.UserStatusActive
	users, err := s.userRepo.List(ctx, repository.UserFilter{Role: &role, Status: &active})
	if err != nil {
		return 0, errors.Wrap(err, "failed to list users by role")
	}

	notified := 0
	for _, user := range users {
		if _, err := s.Notify(ctx, user.ID, message, notificationType); err != nil {
			return notified, errors.Wrapf(err, "failed to notify user %s", user.ID)
		}
		notified++
	}

	s.log(ctx).Debug("Role notified", slog.String("role", role.String()), slog.Int("recipients", notified))

	return notified, nil
}

// MarkRead marks one of the user's notifications as read
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}

	if notification.UserID != userID {
		return domainerrors.ErrForbidden
	}
	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	publishChanges(ctx, s.feed, s.logger, service.NotificationsTopic(userID.String()))

	return nil
}

// MarkAllRead marks all of the user's unread notifications as read
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	if count > 0 {
		publishChanges(ctx, s.feed, s.logger, service.NotificationsTopic(userID.String()))
	}

	return count, nil
}

// ListForUser retrieves the user's notifications, newest first
func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// CountUnread counts the user's unread notifications
func (s *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func newNotification(userID uuid.UUID, message string, notificationType entity.NotificationType) (*entity.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}
	if notificationType == "" {
		notificationType = entity.NotificationTypeSystem
	}
	if !notificationType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid notification type")
	}

	now := time.Now()

	return &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		Timestamp: now,
		UpdatedAt: now,
	}, nil
}

func shopConfig(cfg *config.Config) *config.ShopConfig {
	if cfg == nil {
		return nil
	}

	return cfg.Shop
}

func shopName(cfg *config.Config) string {
	if shop := shopConfig(cfg); shop != nil {
		return shop.Name
	}

	return ""
}

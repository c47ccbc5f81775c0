package impl

import (
	"context"
	"fmt"
	"testing"

	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	mockRepo "drinkpos/internal/mocks/repository"
	mockService "drinkpos/internal/mocks/service"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationSvc  *mockService.MockNotificationService
	feed             *mockService.MockChangeFeed
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)
	feed := mockService.NewMockChangeFeed(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		DeviceRepo:       deviceRepo,
		NotificationSvc:  notificationSvc,
		Feed:             feed,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		deviceRepo:       deviceRepo,
		notificationSvc:  notificationSvc,
		feed:             feed,
	}
}

func TestNotificationService_Notify_PersistsAndPushes(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	staffID := uuid.New()

	fx.notificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == staffID && n.Message == "Ca mới" && n.Type == entity.NotificationTypeShift && !n.IsRead
	})).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.NotificationsTopic(staffID.String())).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, staffID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: staffID, FCMToken: "token-a", IsActive: true},
		{ID: uuid.New(), UserID: staffID, FCMToken: "", IsActive: true},
	}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a"}, "Quán Test", "Ca mới", mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)

	notification, err := fx.service.Notify(ctx, staffID, "  Ca mới ", entity.NotificationTypeShift)
	require.NoError(t, err)
	assert.Equal(t, "Ca mới", notification.Message)
	assert.False(t, notification.Timestamp.IsZero())
}

func TestNotificationService_Notify_PushFailureDoesNotFail(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	staffID := uuid.New()

	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("feed down"))
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, staffID).Return(nil, errors.New("db down"))

	_, err := fx.service.Notify(ctx, staffID, "Xin chào", entity.NotificationTypeSystem)
	require.NoError(t, err)
}

func TestNotificationService_Notify_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	staffID := uuid.New()

	devices := make([]*entity.UserDevice, 0, firebaseBatchSize+2)
	for i := range firebaseBatchSize + 2 {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: staffID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, staffID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(firebaseBatchSize-1, 1, []string{"token-3"}, nil).Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-500", "token-501"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 2, nil, errors.New("quota exceeded")).Once()
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-3"}).Return(nil)

	_, err := fx.service.Notify(ctx, staffID, "Xin chào", entity.NotificationTypeSystem)
	require.NoError(t, err)
}

func TestNotificationService_Notify_Validation(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.Notify(context.Background(), uuid.New(), "   ", entity.NotificationTypeSystem)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Notify(context.Background(), uuid.New(), "hi", entity.NotificationType("promo"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_Notify_CreateError(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.Notify(ctx, uuid.New(), "hi", entity.NotificationTypeOrder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create notification")
}

func TestNotificationService_NotifyRole_OnePerActiveAdmin(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	admins := []*entity.User{{ID: uuid.New(), Role: entity.RoleAdmin}, {ID: uuid.New(), Role: entity.RoleAdmin}}

	fx.userRepo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.UserFilter) bool {
		return f.Role != nil && *f.Role == entity.RoleAdmin && f.Status != nil && *f.Status == entity.UserStatusActive
	})).Return(admins, nil)
	for _, admin := range admins {
		fx.notificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.UserID == admin.ID })).Return(nil).Once()
		fx.feed.EXPECT().Publish(ctx, service.NotificationsTopic(admin.ID.String())).Return(nil).Once()
		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, admin.ID).Return(nil, nil).Once()
	}

	count, err := fx.service.NotifyRole(ctx, entity.RoleAdmin, "Đơn mới", entity.NotificationTypeOrder)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationService_NotifyRole_NoRecipients(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, mock.Anything).Return(nil, nil)

	count, err := fx.service.NotifyRole(ctx, entity.RoleAdmin, "Đơn mới", entity.NotificationTypeOrder)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = fx.service.NotifyRole(ctx, entity.Role("owner"), "x", entity.NotificationTypeOrder)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	notificationID := uuid.New()

	t.Run("unread notification", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID, UserID: staffID}, nil)
		fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID).Return(nil)
		fx.feed.EXPECT().Publish(ctx, service.NotificationsTopic(staffID.String())).Return(nil)

		require.NoError(t, fx.service.MarkRead(ctx, staffID, notificationID))
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID, UserID: staffID, IsRead: true}, nil)

		require.NoError(t, fx.service.MarkRead(ctx, staffID, notificationID))
	})

	t.Run("owned by someone else", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID, UserID: uuid.New()}, nil)

		assert.ErrorIs(t, fx.service.MarkRead(ctx, staffID, notificationID), domainerrors.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(nil, repository.ErrNotificationNotFound)

		assert.ErrorIs(t, fx.service.MarkRead(ctx, staffID, notificationID), domainerrors.ErrNotificationNotFound)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	t.Run("publishes when something changed", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().MarkAllRead(ctx, staffID).Return(int64(3), nil)
		fx.feed.EXPECT().Publish(ctx, service.NotificationsTopic(staffID.String())).Return(nil)

		count, err := fx.service.MarkAllRead(ctx, staffID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("nothing unread", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().MarkAllRead(ctx, staffID).Return(int64(0), nil)

		count, err := fx.service.MarkAllRead(ctx, staffID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestNotificationService_ListAndCount(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	staffID := uuid.New()
	stored := []*entity.Notification{{ID: uuid.New(), UserID: staffID}}

	fx.notificationRepo.EXPECT().ListByUser(ctx, staffID, 20, 0).Return(stored, nil)
	fx.notificationRepo.EXPECT().CountUnread(ctx, staffID).Return(int64(1), nil)

	list, err := fx.service.ListForUser(ctx, staffID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, stored, list)

	unread, err := fx.service.CountUnread(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

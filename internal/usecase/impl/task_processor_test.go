package impl

import (
	"context"
	"testing"
	"time"

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

// taskProcessorFixtures holds all test dependencies for task processor tests.
type taskProcessorFixtures struct {
	processor        *taskProcessor
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	outboxRepo       *mockRepo.MockOutboxRepository
	menuRepo         *mockRepo.MockMenuItemRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationSvc  *mockService.MockNotificationService
	feed             *mockService.MockChangeFeed
	now              time.Time
}

func createTestTaskProcessor(t *testing.T) taskProcessorFixtures {
	fx := taskProcessorFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		outboxRepo:       mockRepo.NewMockOutboxRepository(t),
		menuRepo:         mockRepo.NewMockMenuItemRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		notificationSvc:  mockService.NewMockNotificationService(t),
		feed:             mockService.NewMockChangeFeed(t),
		now:              time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
	}

	processor := NewTaskProcessor(TaskProcessorParams{
		TxManager:       fx.txManager,
		OutboxRepo:      fx.outboxRepo,
		DeviceRepo:      fx.deviceRepo,
		NotificationSvc: fx.notificationSvc,
		Feed:            fx.feed,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})
	fx.processor = processor.(*taskProcessor)
	fx.processor.now = func() time.Time { return fx.now }

	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOutboxRepository().Return(fx.outboxRepo).Maybe()
	fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo).Maybe()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().NewNotificationRepository().Return(fx.notificationRepo).Maybe()

	return fx
}

func newTestTask(t *testing.T, kind entity.TaskKind, payload any, attempts int) *entity.OutboxTask {
	task, err := entity.NewOutboxTask(uuid.New(), kind, payload, time.Now())
	require.NoError(t, err)
	task.Attempts = attempts

	return task
}

func TestTaskProcessor_Process_DecrementStock(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	ownerID := uuid.New()
	task := newTestTask(t, entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: ownerID, Amount: 3}, 0)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, task.ID).Return(task, nil)
	fx.menuRepo.EXPECT().DecrementStock(ctx, ownerID, 3).Return(nil)
	fx.outboxRepo.EXPECT().MarkDone(ctx, task.ID).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicMenu).Return(nil)

	require.NoError(t, fx.processor.Process(ctx, task.ID))
}

func TestTaskProcessor_Process_MissingOwnerIsDone(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	ownerID := uuid.New()
	task := newTestTask(t, entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: ownerID, Amount: 1}, 0)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, task.ID).Return(task, nil)
	fx.menuRepo.EXPECT().DecrementStock(ctx, ownerID, 1).Return(repository.ErrMenuItemNotFound)
	fx.outboxRepo.EXPECT().MarkDone(ctx, task.ID).Return(nil)

	require.NoError(t, fx.processor.Process(ctx, task.ID))
}

func TestTaskProcessor_Process_NotClaimable(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	taskID := uuid.New()

	fx.outboxRepo.EXPECT().ClaimTask(ctx, taskID).Return(nil, repository.ErrTaskNotClaimable)

	require.NoError(t, fx.processor.Process(ctx, taskID))
}

func TestTaskProcessor_Process_NotFound(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	taskID := uuid.New()

	fx.outboxRepo.EXPECT().ClaimTask(ctx, taskID).Return(nil, repository.ErrTaskNotFound)

	assert.ErrorIs(t, fx.processor.Process(ctx, taskID), domainerrors.ErrTaskNotFound)
}

func TestTaskProcessor_Process_RecordsFailure(t *testing.T) {
	tests := []struct {
		name       string
		attempts   int
		wantStatus entity.TaskStatus
		wantDelay  time.Duration
	}{
		{name: "first failure retries", attempts: 0, wantStatus: entity.TaskStatusPending, wantDelay: 2 * time.Second},
		{name: "second failure backs off", attempts: 1, wantStatus: entity.TaskStatusPending, wantDelay: 4 * time.Second},
		{name: "last attempt goes dead", attempts: 2, wantStatus: entity.TaskStatusDead, wantDelay: 8 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTaskProcessor(t)
			ctx := context.Background()
			ownerID := uuid.New()
			task := newTestTask(t, entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: ownerID, Amount: 2}, tt.attempts)

			fx.outboxRepo.EXPECT().ClaimTask(ctx, task.ID).Return(task, nil).Twice()
			fx.menuRepo.EXPECT().DecrementStock(ctx, ownerID, 2).Return(errors.New("connection reset"))
			fx.outboxRepo.EXPECT().
				MarkFailed(ctx, task.ID, tt.attempts+1, "failed to decrement stock: connection reset", tt.wantStatus, fx.now.Add(tt.wantDelay)).
				Return(nil)

			err := fx.processor.Process(ctx, task.ID)
			assert.ErrorIs(t, err, usecase.ErrTaskFailed)
			assert.Contains(t, err.Error(), "connection reset")
		})
	}
}

func TestTaskProcessor_Process_MarkDoneFailureRollsBack(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	ownerID := uuid.New()
	task := newTestTask(t, entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: ownerID, Amount: 1}, 0)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, task.ID).Return(task, nil).Twice()
	fx.menuRepo.EXPECT().DecrementStock(ctx, ownerID, 1).Return(nil)
	fx.outboxRepo.EXPECT().MarkDone(ctx, task.ID).Return(errors.New("deadlock"))
	fx.outboxRepo.EXPECT().
		MarkFailed(ctx, task.ID, 1, mock.Anything, entity.TaskStatusPending, mock.Anything).
		Return(nil)

	assert.ErrorIs(t, fx.processor.Process(ctx, task.ID), usecase.ErrTaskFailed)
}

func TestTaskProcessor_Process_NotifyRole(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	admins := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}
	task := newTestTask(t, entity.TaskNotifyRole, entity.NotifyRolePayload{
		Role:    entity.RoleAdmin,
		Message: "Lan vừa tạo đơn #ABC - Tiền mặt: 55.000đ",
		Type:    entity.NotificationTypeOrder,
	}, 0)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, task.ID).Return(task, nil)
	fx.userRepo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.UserFilter) bool {
		return f.Role != nil && *f.Role == entity.RoleAdmin && f.Status != nil && *f.Status == entity.UserStatusActive
	})).Return(admins, nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Type == entity.NotificationTypeOrder && !n.IsRead
	})).Return(nil).Twice()
	fx.outboxRepo.EXPECT().MarkDone(ctx, task.ID).Return(nil)

	for _, admin := range admins {
		fx.feed.EXPECT().Publish(ctx, service.NotificationsTopic(admin.ID.String())).Return(nil)
	}
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, admins[0].ID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: admins[0].ID, FCMToken: "token-admin", IsActive: true},
	}, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, admins[1].ID).Return(nil, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-admin"}, "Quán Test", "Lan vừa tạo đơn #ABC - Tiền mặt: 55.000đ", mock.Anything).
		Return(1, 0, nil, nil)

	require.NoError(t, fx.processor.Process(ctx, task.ID))
}

func TestTaskProcessor_Process_NotifyRoleUsesSnapshot(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	kept, deleted, other := uuid.New(), uuid.New(), uuid.New()
	task := newTestTask(t, entity.TaskNotifyRole, entity.NotifyRolePayload{
		Role:    entity.RoleAdmin,
		UserIDs: []uuid.UUID{kept, deleted, other},
		Message: "Lan vừa tạo đơn #ABC - Tiền mặt: 55.000đ",
		Type:    entity.NotificationTypeOrder,
	}, 0)

	var recipients []uuid.UUID
	fx.outboxRepo.EXPECT().ClaimTask(ctx, task.ID).Return(task, nil)
	fx.userRepo.EXPECT().FindByID(ctx, kept).Return(&entity.User{ID: kept}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, deleted).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, other).Return(&entity.User{ID: other}, nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { recipients = append(recipients, n.UserID) }).
		Return(nil).Twice()
	fx.outboxRepo.EXPECT().MarkDone(ctx, task.ID).Return(nil)

	for _, userID := range []uuid.UUID{kept, other} {
		fx.feed.EXPECT().Publish(ctx, service.NotificationsTopic(userID.String())).Return(nil)
		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, nil)
	}

	require.NoError(t, fx.processor.Process(ctx, task.ID))
	assert.Equal(t, []uuid.UUID{kept, other}, recipients)
}

func TestTaskProcessor_Process_NotifyRoleEmptySnapshotSkipsLookup(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	task := newTestTask(t, entity.TaskNotifyRole, entity.NotifyRolePayload{
		Role:    entity.RoleAdmin,
		UserIDs: []uuid.UUID{},
		Message: "Lan vừa tạo đơn #ABC",
		Type:    entity.NotificationTypeOrder,
	}, 0)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, task.ID).Return(task, nil)
	fx.outboxRepo.EXPECT().MarkDone(ctx, task.ID).Return(nil)

	require.NoError(t, fx.processor.Process(ctx, task.ID))
	fx.userRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestTaskProcessor_Process_NotifyMissingUserIsDone(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	userID := uuid.New()
	task := newTestTask(t, entity.TaskNotifyUser, entity.NotifyUserPayload{UserID: userID, Message: "hi"}, 0)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, task.ID).Return(task, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	fx.outboxRepo.EXPECT().MarkDone(ctx, task.ID).Return(nil)

	require.NoError(t, fx.processor.Process(ctx, task.ID))
}

func TestTaskProcessor_ProcessDue(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	ownerID := uuid.New()
	applied := newTestTask(t, entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: ownerID, Amount: 1}, 0)
	taken := newTestTask(t, entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: ownerID, Amount: 1}, 0)
	broken := newTestTask(t, entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: ownerID, Amount: 1}, 0)

	fx.outboxRepo.EXPECT().FindDueTasks(ctx, fx.now, 10).Return([]*entity.OutboxTask{applied, taken, broken}, nil)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, applied.ID).Return(applied, nil)
	fx.menuRepo.EXPECT().DecrementStock(ctx, ownerID, 1).Return(nil).Once()
	fx.outboxRepo.EXPECT().MarkDone(ctx, applied.ID).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicMenu).Return(nil)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, taken.ID).Return(nil, repository.ErrTaskNotClaimable)

	fx.outboxRepo.EXPECT().ClaimTask(ctx, broken.ID).Return(nil, errors.New("db down"))

	count, err := fx.processor.ProcessDue(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTaskProcessor_ProcessDue_FindFails(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()

	fx.outboxRepo.EXPECT().FindDueTasks(ctx, fx.now, 5).Return(nil, errors.New("db down"))

	_, err := fx.processor.ProcessDue(ctx, 5)
	assert.Error(t, err)
}

package impl

import (
	"context"
	"strings"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service    usecase.OrderUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	orderRepo  *mockRepo.MockOrderRepository
	outboxRepo *mockRepo.MockOutboxRepository
	userRepo   *mockRepo.MockUserRepository
	publisher  *mockService.MockEventPublisher
	feed       *mockService.MockChangeFeed
	admins     []*entity.User
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		outboxRepo: mockRepo.NewMockOutboxRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		publisher:  mockService.NewMockEventPublisher(t),
		feed:       mockService.NewMockChangeFeed(t),
		admins:     []*entity.User{{ID: uuid.New(), Role: entity.RoleAdmin}, {ID: uuid.New(), Role: entity.RoleAdmin}},
	}

	fx.service = NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Publisher: fx.publisher,
		Feed:      fx.feed,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func (fx orderServiceFixtures) expectTx() {
	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
	fx.factory.EXPECT().NewOutboxRepository().Return(fx.outboxRepo).Maybe()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo).Maybe()
	fx.userRepo.EXPECT().List(mock.Anything, mock.MatchedBy(isActiveAdminFilter)).Return(fx.admins, nil).Maybe()
}

func isActiveAdminFilter(f repository.UserFilter) bool {
	return f.Role != nil && *f.Role == entity.RoleAdmin && f.Status != nil && *f.Status == entity.UserStatusActive
}

func testLines() (parent uuid.UUID, lines []entity.CartItem) {
	parent = uuid.New()
	lines = []entity.CartItem{
		{ItemID: uuid.New(), Name: "Trà sữa size M", Price: 25000, Category: entity.CategoryDrink, ParentID: &parent, Quantity: 2},
		{ItemID: uuid.New(), Name: "Trà sữa size L", Price: 30000, Category: entity.CategoryDrink, ParentID: &parent, Quantity: 1},
		{ItemID: uuid.New(), Name: "Trân châu", Price: 5000, Category: entity.CategoryTopping, Quantity: 3},
	}

	return parent, lines
}

func TestOrderService_ConfirmOrder_PersistsOrderAndTasks(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	staffID := uuid.New()
	parent, lines := testLines()

	var tasks []*entity.OutboxTask
	fx.expectTx()
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.outboxRepo.EXPECT().CreateTasks(ctx, mock.Anything).
		Run(func(_ context.Context, created []*entity.OutboxTask) { tasks = created }).
		Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicOrders).Return(nil)
	fx.publisher.EXPECT().PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).Return(nil).Times(4)

	order, err := fx.service.ConfirmOrder(ctx, &usecase.ConfirmOrderInput{
		StaffID:       staffID,
		StaffName:     "Lan",
		Items:         lines,
		PaymentMethod: entity.PaymentCash,
		CustomerName:  " Minh ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(95000), order.Total)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.Equal(t, entity.OrderSourceApp, order.Source)
	assert.Equal(t, "Minh", order.CustomerName)
	assert.Len(t, order.Items, 3)

	require.Len(t, tasks, 4)
	decrements := map[uuid.UUID]int{}
	for _, task := range tasks[:2] {
		require.Equal(t, entity.TaskDecrementStock, task.Kind)
		var payload entity.DecrementStockPayload
		require.NoError(t, task.DecodePayload(&payload))
		decrements[payload.OwnerID] = payload.Amount
		assert.Equal(t, order.ID, task.OrderID)
		assert.Equal(t, entity.TaskStatusPending, task.Status)
	}
	assert.Equal(t, 3, decrements[parent])
	assert.Equal(t, 3, decrements[lines[2].ItemID])

	var notifyUser entity.NotifyUserPayload
	require.Equal(t, entity.TaskNotifyUser, tasks[2].Kind)
	require.NoError(t, tasks[2].DecodePayload(&notifyUser))
	assert.Equal(t, staffID, notifyUser.UserID)
	assert.True(t, strings.HasPrefix(notifyUser.Message, "Đơn hàng #"))
	assert.Contains(t, notifyUser.Message, "Tiền mặt: 95.000đ")

	var notifyRole entity.NotifyRolePayload
	require.Equal(t, entity.TaskNotifyRole, tasks[3].Kind)
	require.NoError(t, tasks[3].DecodePayload(&notifyRole))
	assert.Equal(t, entity.RoleAdmin, notifyRole.Role)
	assert.Equal(t, []uuid.UUID{fx.admins[0].ID, fx.admins[1].ID}, notifyRole.UserIDs)
	assert.True(t, strings.HasPrefix(notifyRole.Message, "Lan vừa tạo đơn #"))
}

func TestOrderService_ConfirmOrder_NoAdminsKeepsEmptySnapshot(t *testing.T) {
	fx := createTestOrderService(t)
	fx.admins = nil
	ctx := context.Background()
	_, lines := testLines()

	var tasks []*entity.OutboxTask
	fx.expectTx()
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.outboxRepo.EXPECT().CreateTasks(ctx, mock.Anything).
		Run(func(_ context.Context, created []*entity.OutboxTask) { tasks = created }).
		Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicOrders).Return(nil)
	fx.publisher.EXPECT().PublishTaskEvent(ctx, mock.Anything).Return(nil).Times(4)

	_, err := fx.service.ConfirmOrder(ctx, &usecase.ConfirmOrderInput{StaffID: uuid.New(), Items: lines, PaymentMethod: entity.PaymentCash})
	require.NoError(t, err)

	require.Len(t, tasks, 4)
	assert.Contains(t, string(tasks[3].Payload), `"user_ids":[]`)

	var notifyRole entity.NotifyRolePayload
	require.NoError(t, tasks[3].DecodePayload(&notifyRole))
	assert.NotNil(t, notifyRole.UserIDs)
	assert.Empty(t, notifyRole.UserIDs)
}

func TestOrderService_ConfirmOrder_AdminLookupFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	_, lines := testLines()

	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().List(ctx, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := fx.service.ConfirmOrder(ctx, &usecase.ConfirmOrderInput{StaffID: uuid.New(), Items: lines, PaymentMethod: entity.PaymentCash})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list recipients")
}

func TestOrderService_ConfirmOrder_DispatchFailureIsSwallowed(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	_, lines := testLines()

	fx.expectTx()
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.outboxRepo.EXPECT().CreateTasks(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicOrders).Return(nil)
	fx.publisher.EXPECT().PublishTaskEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	order, err := fx.service.ConfirmOrder(ctx, &usecase.ConfirmOrderInput{StaffID: uuid.New(), Items: lines, PaymentMethod: entity.PaymentTransfer})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
}

func TestOrderService_ConfirmOrder_TransactionFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	_, lines := testLines()

	fx.expectTx()
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.outboxRepo.EXPECT().CreateTasks(ctx, mock.Anything).Return(errors.New("deadlock detected"))

	_, err := fx.service.ConfirmOrder(ctx, &usecase.ConfirmOrderInput{StaffID: uuid.New(), Items: lines, PaymentMethod: entity.PaymentPostpaid})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create order tasks")
}

func TestOrderService_ConfirmOrder_Validation(t *testing.T) {
	_, lines := testLines()

	tests := []struct {
		name  string
		input usecase.ConfirmOrderInput
		want  error
	}{
		{name: "empty cart", input: usecase.ConfirmOrderInput{StaffID: uuid.New(), PaymentMethod: entity.PaymentCash}, want: domainerrors.ErrEmptyCart},
		{name: "no method", input: usecase.ConfirmOrderInput{StaffID: uuid.New(), Items: lines}, want: domainerrors.ErrInvalidPaymentMethod},
		{name: "no staff", input: usecase.ConfirmOrderInput{Items: lines, PaymentMethod: entity.PaymentCash}, want: domainerrors.ErrValidationFailed},
		{
			name: "zero quantity",
			input: usecase.ConfirmOrderInput{
				StaffID:       uuid.New(),
				Items:         []entity.CartItem{{ItemID: uuid.New(), Price: 1000, Category: entity.CategoryDrink}},
				PaymentMethod: entity.PaymentCash,
			},
			want: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.ConfirmOrder(context.Background(), &tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound).Once()
	_, err := fx.service.GetOrder(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id}, nil).Once()
	order, err := fx.service.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, order.ID)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orders := []*entity.Order{{ID: uuid.New()}}

	fx.orderRepo.EXPECT().List(ctx, 50, 0).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

package impl

import (
	"context"
	"io"
	"testing"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/infra/livequery"
	"drinkpos/internal/infra/persistence/memory"
	"drinkpos/internal/infra/pubsub"
	mockService "drinkpos/internal/mocks/service"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// confirmFlowFixtures wires the real checkout pipeline over one memory store.
type confirmFlowFixtures struct {
	store     *memory.Store
	catalog   usecase.CatalogUsecase
	checkout  usecase.CheckoutUsecase
	processor usecase.TaskProcessor
	users     repository.UserRepository
	notes     repository.NotificationRepository
	staff     *entity.User
	admins    []*entity.User
	pending   *entity.User
}

func createTestConfirmFlow(t *testing.T, publish func(usecase.TaskProcessor) service.EventPublisher) confirmFlowFixtures {
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	logger := newDiscardLogger()
	feed := livequery.NewLocalFeed(logger)
	cfg := newTestConfig()

	fx := confirmFlowFixtures{
		store: store,
		users: memory.NewUserRepository(store),
		notes: memory.NewNotificationRepository(store),
	}

	fx.catalog = NewCatalogService(CatalogServiceParams{
		TxManager: txManager,
		MenuRepo:  memory.NewMenuItemRepository(store),
		Feed:      feed,
		Logger:    logger,
	})
	fx.processor = NewTaskProcessor(TaskProcessorParams{
		TxManager:       txManager,
		OutboxRepo:      memory.NewOutboxRepository(store),
		DeviceRepo:      memory.NewDeviceRepository(store),
		NotificationSvc: mockService.NewMockNotificationService(t),
		Feed:            feed,
		Config:          cfg,
		Logger:          logger,
	})

	var publisher service.EventPublisher
	if publish != nil {
		publisher = publish(fx.processor)
	}
	orders := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: memory.NewOrderRepository(store),
		Publisher: publisher,
		Feed:      feed,
		Logger:    logger,
	})
	fx.checkout = NewCheckoutService(CheckoutServiceParams{
		Catalog: fx.catalog,
		Orders:  orders,
		Config:  cfg,
		Logger:  logger,
	})

	fx.staff = fx.createUser(t, "lan", entity.RoleStaff, entity.UserStatusActive)
	fx.admins = []*entity.User{
		fx.createUser(t, "hoa", entity.RoleAdmin, entity.UserStatusActive),
		fx.createUser(t, "minh", entity.RoleAdmin, entity.UserStatusActive),
	}
	fx.pending = fx.createUser(t, "tuan", entity.RoleAdmin, entity.UserStatusPending)

	return fx
}

func (fx confirmFlowFixtures) createUser(t *testing.T, username string, role entity.Role, status entity.UserStatus) *entity.User {
	user := &entity.User{ID: uuid.New(), Name: username, Username: username, Role: role, Status: status}
	require.NoError(t, fx.users.Create(context.Background(), user))

	return user
}

func (fx confirmFlowFixtures) createDrink(t *testing.T, name string, price int64, stock int) *entity.MenuItem {
	item, err := fx.catalog.CreateItem(context.Background(), &usecase.CreateMenuItemInput{
		Name:     name,
		Price:    price,
		Category: entity.CategoryDrink,
		Stock:    stock,
	})
	require.NoError(t, err)

	return item
}

// checkoutCash puts two A and one B in the staff cart and confirms the order paid in cash.
func (fx confirmFlowFixtures) checkoutCash(t *testing.T, a, b *entity.MenuItem) *entity.Order {
	ctx := context.Background()
	staffID := fx.staff.ID

	_, err := fx.checkout.AddItem(ctx, staffID, a.ID)
	require.NoError(t, err)
	_, err = fx.checkout.ChangeQuantity(ctx, staffID, a.ID, 1)
	require.NoError(t, err)
	_, err = fx.checkout.AddItem(ctx, staffID, b.ID)
	require.NoError(t, err)

	view, err := fx.checkout.Stage(ctx, staffID, usecase.BuyerInfo{})
	require.NoError(t, err)
	assert.Equal(t, int64(55000), view.StagedTotal)

	_, err = fx.checkout.SelectPaymentMethod(ctx, staffID, entity.PaymentCash)
	require.NoError(t, err)

	order, err := fx.checkout.Confirm(ctx, staffID, fx.staff.Name)
	require.NoError(t, err)

	return order
}

func (fx confirmFlowFixtures) stock(t *testing.T, id uuid.UUID) int {
	qty, _, err := fx.catalog.AvailableQuantity(context.Background(), id)
	require.NoError(t, err)

	return qty
}

func (fx confirmFlowFixtures) notificationCount(t *testing.T, userID uuid.UUID) int {
	notifications, err := fx.notes.ListByUser(context.Background(), userID, 0, 0)
	require.NoError(t, err)

	return len(notifications)
}

func TestConfirmFlow_CashOrderAppliesEveryEffect(t *testing.T) {
	var inline service.EventPublisher
	fx := createTestConfirmFlow(t, func(processor usecase.TaskProcessor) service.EventPublisher {
		inline = pubsub.NewInlinePublisher(processor, newDiscardLogger())

		return inline
	})
	ctx := context.Background()
	a := fx.createDrink(t, "Trà đào", 20000, 5)
	b := fx.createDrink(t, "Cà phê sữa", 15000, 3)

	order := fx.checkoutCash(t, a, b)

	// Close waits for the dispatched tasks.
	closer, ok := inline.(io.Closer)
	require.True(t, ok)
	require.NoError(t, closer.Close())

	assert.Equal(t, int64(55000), order.Total)
	assert.Equal(t, entity.PaymentCash, order.PaymentMethod)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)

	assert.Equal(t, 3, fx.stock(t, a.ID))
	assert.Equal(t, 2, fx.stock(t, b.ID))

	assert.Equal(t, 1, fx.notificationCount(t, fx.staff.ID))
	for _, admin := range fx.admins {
		assert.Equal(t, 1, fx.notificationCount(t, admin.ID), admin.Username)
	}
	assert.Zero(t, fx.notificationCount(t, fx.pending.ID))

	view, err := fx.checkout.GetSession(ctx, fx.staff.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
	assert.Equal(t, usecase.SessionEmpty, view.State)
}

func TestConfirmFlow_SweptTaskKeepsAdminSnapshot(t *testing.T) {
	fx := createTestConfirmFlow(t, nil)
	ctx := context.Background()
	a := fx.createDrink(t, "Trà đào", 20000, 5)
	b := fx.createDrink(t, "Cà phê sữa", 15000, 3)

	fx.checkoutCash(t, a, b)

	// An admin approved after the order is confirmed is not a recipient.
	require.NoError(t, fx.users.UpdateStatus(ctx, fx.pending.ID, entity.UserStatusActive))

	applied, err := fx.processor.ProcessDue(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, applied)

	assert.Equal(t, 3, fx.stock(t, a.ID))
	assert.Equal(t, 2, fx.stock(t, b.ID))
	assert.Equal(t, 1, fx.notificationCount(t, fx.staff.ID))
	for _, admin := range fx.admins {
		assert.Equal(t, 1, fx.notificationCount(t, admin.ID), admin.Username)
	}
	assert.Zero(t, fx.notificationCount(t, fx.pending.ID))
}

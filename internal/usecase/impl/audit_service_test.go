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

// auditServiceFixtures holds all test dependencies for audit service tests.
type auditServiceFixtures struct {
	service     usecase.AuditUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	deletedRepo *mockRepo.MockDeletedOrderRepository
	feed        *mockService.MockChangeFeed
}

func createTestAuditService(t *testing.T) auditServiceFixtures {
	fx := auditServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		deletedRepo: mockRepo.NewMockDeletedOrderRepository(t),
		feed:        mockService.NewMockChangeFeed(t),
	}

	fx.service = NewAuditService(AuditServiceParams{
		TxManager:   fx.txManager,
		DeletedRepo: fx.deletedRepo,
		Feed:        fx.feed,
		Logger:      newDiscardLogger(),
	})

	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
	fx.factory.EXPECT().NewDeletedOrderRepository().Return(fx.deletedRepo).Maybe()

	return fx
}

func TestAuditService_DeleteOrder(t *testing.T) {
	fx := createTestAuditService(t)
	ctx := context.Background()
	staffID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		Items:         []entity.CartItem{{ItemID: uuid.New(), Name: "Cà phê sữa", Price: 20000, Quantity: 2}},
		Total:         40000,
		PaymentMethod: entity.PaymentCash,
		Timestamp:     time.Now().Add(-time.Hour),
		StaffID:       staffID,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.deletedRepo.EXPECT().CreateLog(ctx, mock.MatchedBy(func(log *entity.DeletedOrderLog) bool {
		return log.OriginalOrderID == order.ID && log.Total == 40000 && log.DeletedBy == "Hà" &&
			log.DeletedByRole == entity.RoleAdmin && len(log.Items) == 1 && log.Items[0].Quantity == 2
	})).Return(nil)
	fx.orderRepo.EXPECT().Delete(ctx, order.ID).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicOrders).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicDeletedOrders).Return(nil)

	deleted, err := fx.service.DeleteOrder(ctx, order.ID, entity.Actor{ID: uuid.New(), Name: "Hà", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Cà phê sữa", deleted.Items[0].Name)
	assert.Equal(t, staffID, deleted.StaffID)
}

func TestAuditService_DeleteOrder_DefaultsActor(t *testing.T) {
	fx := createTestAuditService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Total: 10000, PaymentMethod: entity.PaymentPostpaid}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.deletedRepo.EXPECT().CreateLog(ctx, mock.Anything).Return(nil)
	fx.orderRepo.EXPECT().Delete(ctx, order.ID).Return(nil)
	fx.feed.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	deleted, err := fx.service.DeleteOrder(ctx, order.ID, entity.Actor{})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultActorName, deleted.DeletedBy)
	assert.Equal(t, entity.DefaultActorRole, deleted.DeletedByRole)
}

func TestAuditService_DeleteOrder_Missing(t *testing.T) {
	fx := createTestAuditService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.DeleteOrder(ctx, id, entity.Actor{Name: "Hà"})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	fx.deletedRepo.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
}

func TestAuditService_DeleteOrder_DeleteFailureAborts(t *testing.T) {
	fx := createTestAuditService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.deletedRepo.EXPECT().CreateLog(ctx, mock.Anything).Return(nil)
	fx.orderRepo.EXPECT().Delete(ctx, order.ID).Return(errors.New("permission denied"))

	_, err := fx.service.DeleteOrder(ctx, order.ID, entity.Actor{Name: "Hà"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete order")
	fx.feed.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAuditService_ListDeletedOrders(t *testing.T) {
	fx := createTestAuditService(t)
	ctx := context.Background()
	logs := []*entity.DeletedOrderLog{{ID: uuid.New()}}

	fx.deletedRepo.EXPECT().ListLogs(ctx, 20, 40).Return(logs, nil)

	got, err := fx.service.ListDeletedOrders(ctx, 20, 40)
	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

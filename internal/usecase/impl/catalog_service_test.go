package impl

import (
	"context"
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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	menuRepo  *mockRepo.MockMenuItemRepository
	feed      *mockService.MockChangeFeed
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		menuRepo:  mockRepo.NewMockMenuItemRepository(t),
		feed:      mockService.NewMockChangeFeed(t),
	}

	fx.service = NewCatalogService(CatalogServiceParams{
		TxManager: fx.txManager,
		MenuRepo:  fx.menuRepo,
		Feed:      fx.feed,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func (fx catalogServiceFixtures) expectTx() {
	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo)
}

func TestCatalogService_CreateItem_ToppingIsUnlimited(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.expectTx()
	fx.menuRepo.EXPECT().Create(ctx, mock.MatchedBy(func(item *entity.MenuItem) bool {
		return item.Name == "Trân châu" && item.Stock == entity.ToppingDefaultStock
	})).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicMenu).Return(nil)

	item, err := fx.service.CreateItem(ctx, &usecase.CreateMenuItemInput{
		Name:     " Trân châu ",
		Price:    5000,
		Category: entity.CategoryTopping,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ToppingDefaultStock, item.Stock)
}

func TestCatalogService_CreateItem_VariantMarksParent(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	parent := &entity.MenuItem{ID: uuid.New(), Name: "Trà sữa", Category: entity.CategoryDrink, Stock: 20}

	fx.expectTx()
	fx.menuRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.menuRepo.EXPECT().Update(ctx, mock.MatchedBy(func(item *entity.MenuItem) bool {
		return item.ID == parent.ID && item.IsParent
	})).Return(nil)
	fx.menuRepo.EXPECT().Create(ctx, mock.MatchedBy(func(item *entity.MenuItem) bool {
		return item.ParentID != nil && *item.ParentID == parent.ID && item.Stock == 0
	})).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicMenu).Return(nil)

	item, err := fx.service.CreateItem(ctx, &usecase.CreateMenuItemInput{
		Name:     "Trà sữa size L",
		Price:    30000,
		Category: entity.CategoryDrink,
		Stock:    7,
		ParentID: &parent.ID,
	})
	require.NoError(t, err)
	assert.True(t, item.IsVariant())
}

func TestCatalogService_CreateItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateMenuItemInput
		wantErr error
	}{
		{name: "empty name", input: usecase.CreateMenuItemInput{Category: entity.CategoryDrink}, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative price", input: usecase.CreateMenuItemInput{Name: "A", Price: -1, Category: entity.CategoryDrink}, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad category", input: usecase.CreateMenuItemInput{Name: "A", Category: "food"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative stock", input: usecase.CreateMenuItemInput{Name: "A", Category: entity.CategoryDrink, Stock: -2}, wantErr: domainerrors.ErrInvalidStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			_, err := fx.service.CreateItem(context.Background(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_DeleteItem_UnlinksChildren(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	parentID := uuid.New()

	fx.expectTx()
	fx.menuRepo.EXPECT().FindByID(ctx, parentID).Return(&entity.MenuItem{ID: parentID, IsParent: true}, nil)
	fx.menuRepo.EXPECT().ClearParent(ctx, parentID).Return(2, nil)
	fx.menuRepo.EXPECT().Delete(ctx, parentID).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicMenu).Return(nil)

	require.NoError(t, fx.service.DeleteItem(ctx, parentID))
}

func TestCatalogService_DeleteItem_RollsBackOnFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	parentID := uuid.New()

	fx.expectTx()
	fx.menuRepo.EXPECT().FindByID(ctx, parentID).Return(&entity.MenuItem{ID: parentID, IsParent: true}, nil)
	fx.menuRepo.EXPECT().ClearParent(ctx, parentID).Return(2, nil)
	fx.menuRepo.EXPECT().Delete(ctx, parentID).Return(errors.New("permission denied"))

	assert.Error(t, fx.service.DeleteItem(ctx, parentID))
}

func TestCatalogService_StockOwnerAndAvailability(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	parent := &entity.MenuItem{ID: uuid.New(), Category: entity.CategoryDrink, IsParent: true, Stock: 12}
	variant := &entity.MenuItem{ID: uuid.New(), Category: entity.CategoryDrink, ParentID: &parent.ID}
	topping := &entity.MenuItem{ID: uuid.New(), Category: entity.CategoryTopping, Stock: entity.ToppingDefaultStock}
	orphan := &entity.MenuItem{ID: uuid.New(), Category: entity.CategoryDrink, ParentID: func() *uuid.UUID { id := uuid.New(); return &id }()}

	fx.menuRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.menuRepo.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	fx.menuRepo.EXPECT().FindByID(ctx, topping.ID).Return(topping, nil)
	fx.menuRepo.EXPECT().FindByID(ctx, orphan.ID).Return(orphan, nil)
	fx.menuRepo.EXPECT().FindByID(ctx, *orphan.ParentID).Return(nil, repository.ErrMenuItemNotFound)

	owner, err := fx.service.GetStockOwner(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, owner.ID)

	qty, unlimited, err := fx.service.AvailableQuantity(ctx, variant.ID)
	require.NoError(t, err)
	assert.False(t, unlimited)
	assert.Equal(t, 12, qty)

	_, unlimited, err = fx.service.AvailableQuantity(ctx, topping.ID)
	require.NoError(t, err)
	assert.True(t, unlimited)

	_, err = fx.service.GetStockOwner(ctx, orphan.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}

func TestCatalogService_SetStock(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	parentID := uuid.New()
	owner := &entity.MenuItem{ID: parentID, Category: entity.CategoryDrink, IsParent: true}
	variant := &entity.MenuItem{ID: uuid.New(), Category: entity.CategoryDrink, ParentID: &parentID}

	assert.ErrorIs(t, fx.service.SetStock(ctx, parentID, -1), domainerrors.ErrInvalidStock)

	fx.menuRepo.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	assert.ErrorIs(t, fx.service.SetStock(ctx, variant.ID, 5), domainerrors.ErrInvalidStock)

	fx.menuRepo.EXPECT().FindByID(ctx, parentID).Return(owner, nil)
	fx.menuRepo.EXPECT().SetStock(ctx, parentID, 40).Return(nil)
	fx.feed.EXPECT().Publish(ctx, service.TopicMenu).Return(nil)
	require.NoError(t, fx.service.SetStock(ctx, parentID, 40))
}

func TestCatalogService_DecrementStock(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	require.NoError(t, fx.service.DecrementStock(ctx, ownerID, 0))

	fx.menuRepo.EXPECT().DecrementStock(ctx, ownerID, 3).Return(repository.ErrMenuItemNotFound)
	assert.ErrorIs(t, fx.service.DecrementStock(ctx, ownerID, 3), domainerrors.ErrMenuItemNotFound)
}

func TestCatalogService_UpdateItem_ParentLink(t *testing.T) {
	t.Run("item with variants cannot become a variant", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		parent := &entity.MenuItem{ID: uuid.New(), Name: "Trà sữa", Category: entity.CategoryDrink, Stock: 10, IsParent: true}
		child := &entity.MenuItem{ID: uuid.New(), Name: "Trà sữa M", Category: entity.CategoryDrink, ParentID: &parent.ID}
		standalone := uuid.New()

		fx.expectTx()
		fx.menuRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
		fx.menuRepo.EXPECT().FindChildren(ctx, parent.ID).Return([]*entity.MenuItem{child}, nil)

		_, err := fx.service.UpdateItem(ctx, parent.ID, &usecase.UpdateMenuItemInput{ParentID: &standalone})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("clearing the parent flag does not bypass the check", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		parent := &entity.MenuItem{ID: uuid.New(), Name: "Trà sữa", Category: entity.CategoryDrink, Stock: 10, IsParent: true}
		child := &entity.MenuItem{ID: uuid.New(), Name: "Trà sữa M", Category: entity.CategoryDrink, ParentID: &parent.ID}
		standalone := uuid.New()
		notParent := false

		fx.expectTx()
		fx.menuRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
		fx.menuRepo.EXPECT().FindChildren(ctx, parent.ID).Return([]*entity.MenuItem{child}, nil)

		_, err := fx.service.UpdateItem(ctx, parent.ID, &usecase.UpdateMenuItemInput{IsParent: &notParent, ParentID: &standalone})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("standalone item links to a stock owner", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		owner := &entity.MenuItem{ID: uuid.New(), Name: "Cà phê", Category: entity.CategoryDrink, Stock: 7}
		item := &entity.MenuItem{ID: uuid.New(), Name: "Cà phê L", Category: entity.CategoryDrink, Stock: 3}

		fx.expectTx()
		fx.menuRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.menuRepo.EXPECT().FindChildren(ctx, item.ID).Return(nil, nil)
		fx.menuRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
		fx.menuRepo.EXPECT().Update(ctx, mock.MatchedBy(func(m *entity.MenuItem) bool {
			return m.ID == owner.ID && m.IsParent
		})).Return(nil)
		fx.menuRepo.EXPECT().Update(ctx, mock.MatchedBy(func(m *entity.MenuItem) bool {
			return m.ID == item.ID && m.ParentID != nil && *m.ParentID == owner.ID
		})).Return(nil)
		fx.feed.EXPECT().Publish(ctx, service.TopicMenu).Return(nil)

		updated, err := fx.service.UpdateItem(ctx, item.ID, &usecase.UpdateMenuItemInput{ParentID: &owner.ID})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, updated.StockOwnerID())
	})
}

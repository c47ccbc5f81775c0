package impl

import (
	"context"
	"sync"
	"testing"

	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/service"
	mockService "drinkpos/internal/mocks/service"
	mockUsecase "drinkpos/internal/mocks/usecase"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service usecase.CheckoutUsecase
	catalog *mockUsecase.MockCatalogUsecase
	orders  *mockUsecase.MockOrderUsecase
	qrCode  *mockService.MockQRCodeService
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	fx := checkoutServiceFixtures{
		catalog: mockUsecase.NewMockCatalogUsecase(t),
		orders:  mockUsecase.NewMockOrderUsecase(t),
		qrCode:  mockService.NewMockQRCodeService(t),
	}

	fx.service = NewCheckoutService(CheckoutServiceParams{
		Catalog: fx.catalog,
		Orders:  fx.orders,
		QRCode:  fx.qrCode,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	})

	return fx
}

// stockMenu is a parent with two sizes sharing its stock, plus a topping.
type stockMenu struct {
	parent  *entity.MenuItem
	medium  *entity.MenuItem
	large   *entity.MenuItem
	topping *entity.MenuItem
}

func newStockMenu(stock int) stockMenu {
	parent := &entity.MenuItem{ID: uuid.New(), Name: "Trà đào", Category: entity.CategoryDrink, Stock: stock, IsParent: true}

	return stockMenu{
		parent:  parent,
		medium:  &entity.MenuItem{ID: uuid.New(), Name: "Trà đào M", Price: 25000, Category: entity.CategoryDrink, ParentID: &parent.ID},
		large:   &entity.MenuItem{ID: uuid.New(), Name: "Trà đào L", Price: 30000, Category: entity.CategoryDrink, ParentID: &parent.ID},
		topping: &entity.MenuItem{ID: uuid.New(), Name: "Thạch", Price: 5000, Category: entity.CategoryTopping, Stock: entity.ToppingDefaultStock},
	}
}

func (fx checkoutServiceFixtures) expectMenu(m stockMenu) {
	for _, item := range []*entity.MenuItem{m.medium, m.large} {
		fx.catalog.EXPECT().GetItem(mock.Anything, item.ID).Return(item, nil).Maybe()
		fx.catalog.EXPECT().GetStockOwner(mock.Anything, item.ID).Return(m.parent, nil).Maybe()
	}
	fx.catalog.EXPECT().GetItem(mock.Anything, m.topping.ID).Return(m.topping, nil).Maybe()
	fx.catalog.EXPECT().GetStockOwner(mock.Anything, m.topping.ID).Return(m.topping, nil).Maybe()
}

func TestCheckoutService_SharedStockAcrossVariants(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	staffID := uuid.New()
	menu := newStockMenu(3)
	fx.expectMenu(menu)

	_, err := fx.service.AddItem(ctx, staffID, menu.medium.ID)
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, staffID, menu.medium.ID)
	require.NoError(t, err)
	view, err := fx.service.AddItem(ctx, staffID, menu.large.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), view.Total)

	_, err = fx.service.AddItem(ctx, staffID, menu.large.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)

	_, err = fx.service.ChangeQuantity(ctx, staffID, menu.medium.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)

	view, err = fx.service.GetSession(ctx, staffID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 1, view.Items[1].Quantity)

	for range 10 {
		_, err = fx.service.AddItem(ctx, staffID, menu.topping.ID)
		require.NoError(t, err)
	}
}

func TestCheckoutService_ChangeQuantityRemovesAtZero(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	staffID := uuid.New()
	menu := newStockMenu(5)
	fx.expectMenu(menu)

	_, err := fx.service.AddItem(ctx, staffID, menu.medium.ID)
	require.NoError(t, err)

	view, err := fx.service.ChangeQuantity(ctx, staffID, menu.medium.ID, -1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	_, err = fx.service.ChangeQuantity(ctx, staffID, menu.medium.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotInCart)
}

func TestCheckoutService_HappyPath(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	staffID := uuid.New()
	menu := newStockMenu(5)
	fx.expectMenu(menu)

	_, err := fx.service.AddItem(ctx, staffID, menu.large.ID)
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, staffID, menu.topping.ID)
	require.NoError(t, err)

	view, err := fx.service.Stage(ctx, staffID, usecase.BuyerInfo{CustomerName: "Anh Tú", OrderDate: "2026-10-13"})
	require.NoError(t, err)
	assert.Equal(t, usecase.SessionAwaitingMethod, view.State)
	assert.Equal(t, int64(35000), view.StagedTotal)
	assert.Regexp(t, `^DH[0-9A-F]{8}$`, view.Reference)

	_, err = fx.service.AddItem(ctx, staffID, menu.topping.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionStaged)

	_, err = fx.service.Confirm(ctx, staffID, "Lan")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodRequired)

	view, err = fx.service.SelectPaymentMethod(ctx, staffID, entity.PaymentTransfer)
	require.NoError(t, err)
	assert.True(t, view.AwaitingTransfer)

	fx.qrCode.EXPECT().GenerateTransferQR(service.TransferQRRequest{Amount: 35000, Memo: view.Reference}).Return([]byte("png"), nil)
	png, err := fx.service.TransferQR(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	persisted := &entity.Order{ID: uuid.New(), Total: 35000}
	fx.orders.EXPECT().ConfirmOrder(ctx, mock.MatchedBy(func(in *usecase.ConfirmOrderInput) bool {
		return in.StaffID == staffID && in.StaffName == "Lan" && len(in.Items) == 2 &&
			in.PaymentMethod == entity.PaymentTransfer && in.CustomerName == "Anh Tú" &&
			in.OrderDate != nil && in.OrderDate.Day() == 13
	})).Return(persisted, nil)

	order, err := fx.service.Confirm(ctx, staffID, "Lan")
	require.NoError(t, err)
	assert.Equal(t, persisted, order)

	view, err = fx.service.GetSession(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, usecase.SessionEmpty, view.State)
	assert.Empty(t, view.Items)
	assert.Empty(t, view.Reference)
}

func TestCheckoutService_ConfirmFailureKeepsSession(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	staffID := uuid.New()
	menu := newStockMenu(5)
	fx.expectMenu(menu)

	_, err := fx.service.AddItem(ctx, staffID, menu.medium.ID)
	require.NoError(t, err)
	_, err = fx.service.Stage(ctx, staffID, usecase.BuyerInfo{})
	require.NoError(t, err)
	_, err = fx.service.SelectPaymentMethod(ctx, staffID, entity.PaymentCash)
	require.NoError(t, err)

	fx.orders.EXPECT().ConfirmOrder(ctx, mock.Anything).Return(nil, errors.New("store unavailable")).Once()

	_, err = fx.service.Confirm(ctx, staffID, "Lan")
	require.Error(t, err)

	view, err := fx.service.GetSession(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, usecase.SessionAwaitingMethod, view.State)
	assert.Equal(t, entity.PaymentCash, view.PaymentMethod)
	assert.Len(t, view.Items, 1)

	fx.orders.EXPECT().ConfirmOrder(ctx, mock.Anything).Return(&entity.Order{ID: uuid.New()}, nil).Once()
	_, err = fx.service.Confirm(ctx, staffID, "Lan")
	require.NoError(t, err)
}

func TestCheckoutService_StageAndCancel(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	staffID := uuid.New()
	menu := newStockMenu(5)
	fx.expectMenu(menu)

	_, err := fx.service.Stage(ctx, staffID, usecase.BuyerInfo{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	_, err = fx.service.SelectPaymentMethod(ctx, staffID, entity.PaymentCash)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotStaged)

	_, err = fx.service.AddItem(ctx, staffID, menu.medium.ID)
	require.NoError(t, err)

	_, err = fx.service.Stage(ctx, staffID, usecase.BuyerInfo{OrderDate: "13/10/2026"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Stage(ctx, staffID, usecase.BuyerInfo{})
	require.NoError(t, err)

	_, err = fx.service.SelectPaymentMethod(ctx, staffID, entity.PaymentMethod("crypto"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)

	view, err := fx.service.Cancel(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, usecase.SessionEmpty, view.State)
	assert.Len(t, view.Items, 1)
	assert.Zero(t, view.StagedTotal)

	_, err = fx.service.TransferQR(ctx, staffID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotStaged)
}

func TestCheckoutService_SessionsAreIsolated(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	menu := newStockMenu(1000)
	fx.expectMenu(menu)

	staff := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var wg sync.WaitGroup
	for _, staffID := range staff {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				_, _ = fx.service.AddItem(ctx, staffID, menu.medium.ID)
			}
		}()
	}
	wg.Wait()

	for _, staffID := range staff {
		view, err := fx.service.GetSession(ctx, staffID)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 20, view.Items[0].Quantity)
	}

	fx.service.DropSession(staff[0])
	view, err := fx.service.GetSession(ctx, staff[0])
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

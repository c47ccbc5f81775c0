package handler_test

import (
	"net/http"
	"testing"

	"drinkpos/internal/delivery/api/router/handler"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	mockUsecase "drinkpos/internal/mocks/usecase"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogHandlerFixtures struct {
	echo      *echo.Echo
	catalogUC *mockUsecase.MockCatalogUsecase
}

func createTestCatalogHandler(t *testing.T) catalogHandlerFixtures {
	fx := catalogHandlerFixtures{
		echo:      newTestEcho(),
		catalogUC: mockUsecase.NewMockCatalogUsecase(t),
	}

	h := handler.NewCatalogHandler(handler.CatalogHandlerParams{
		CatalogUC: fx.catalogUC,
		Logger:    newDiscardLogger(),
	})

	fx.echo.GET("/menu", h.ListItems)
	fx.echo.GET("/menu/:id/availability", h.GetAvailability)
	fx.echo.POST("/menu", h.CreateItem)
	fx.echo.PATCH("/menu/:id", h.UpdateItem)
	fx.echo.PUT("/menu/:id/stock", h.SetStock)
	fx.echo.DELETE("/menu/:id", h.DeleteItem)

	return fx
}

func TestCatalogHandler_ListItems(t *testing.T) {
	fx := createTestCatalogHandler(t)
	items := []*entity.MenuItem{
		{ID: uuid.New(), Name: "Trà đào", Price: 30000, Category: entity.CategoryDrink, Stock: 12},
		{ID: uuid.New(), Name: "Trân châu", Price: 5000, Category: entity.CategoryTopping, Stock: entity.ToppingDefaultStock},
	}
	fx.catalogUC.EXPECT().ListItems(mock.Anything).Return(items, nil)

	rec := doJSON(t, fx.echo, http.MethodGet, "/menu", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []entity.MenuItem
	decode(t, rec, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "Trà đào", body[0].Name)
}

func TestCatalogHandler_GetAvailability(t *testing.T) {
	fx := createTestCatalogHandler(t)
	parentID := uuid.New()
	variantID := uuid.New()
	fx.catalogUC.EXPECT().GetStockOwner(mock.Anything, variantID).
		Return(&entity.MenuItem{ID: parentID, IsParent: true, Stock: 7}, nil)
	fx.catalogUC.EXPECT().AvailableQuantity(mock.Anything, variantID).Return(7, false, nil)

	rec := doJSON(t, fx.echo, http.MethodGet, "/menu/"+variantID.String()+"/availability", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.AvailabilityResponse
	decode(t, rec, &body)
	assert.Equal(t, parentID.String(), body.OwnerID)
	assert.Equal(t, 7, body.Available)
	assert.False(t, body.Unlimited)
}

func TestCatalogHandler_CreateItem(t *testing.T) {
	t.Run("variant with parent", func(t *testing.T) {
		fx := createTestCatalogHandler(t)
		parentID := uuid.New()
		created := &entity.MenuItem{ID: uuid.New(), Name: "Size L", Price: 35000, Category: entity.CategoryDrink, ParentID: &parentID}

		fx.catalogUC.EXPECT().CreateItem(mock.Anything, mock.MatchedBy(func(in *usecase.CreateMenuItemInput) bool {
			return in.Name == "Size L" && in.ParentID != nil && *in.ParentID == parentID
		})).Return(created, nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/menu", map[string]any{
			"name": "Size L", "price": 35000, "category": "drink", "parent_id": parentID.String(),
		})

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("negative price", func(t *testing.T) {
		fx := createTestCatalogHandler(t)

		rec := doJSON(t, fx.echo, http.MethodPost, "/menu", map[string]any{
			"name": "Trà", "price": -1, "category": "drink",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestCatalogHandler(t)

		rec := doJSON(t, fx.echo, http.MethodPost, "/menu", map[string]any{
			"name": "Bánh", "price": 10000, "category": "food",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCatalogHandler_UpdateItem(t *testing.T) {
	fx := createTestCatalogHandler(t)
	itemID := uuid.New()
	fx.catalogUC.EXPECT().UpdateItem(mock.Anything, itemID, mock.MatchedBy(func(in *usecase.UpdateMenuItemInput) bool {
		return in.ClearParent && in.Name == nil && in.Price != nil && *in.Price == 28000
	})).Return(&entity.MenuItem{ID: itemID, Price: 28000}, nil)

	rec := doJSON(t, fx.echo, http.MethodPatch, "/menu/"+itemID.String(), map[string]any{
		"price": 28000, "clear_parent": true,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_SetStock(t *testing.T) {
	t.Run("zero stock is allowed", func(t *testing.T) {
		fx := createTestCatalogHandler(t)
		itemID := uuid.New()
		fx.catalogUC.EXPECT().SetStock(mock.Anything, itemID, 0).Return(nil)
		fx.catalogUC.EXPECT().GetItem(mock.Anything, itemID).Return(&entity.MenuItem{ID: itemID, Stock: 0}, nil)

		rec := doJSON(t, fx.echo, http.MethodPut, "/menu/"+itemID.String()+"/stock", map[string]int{"stock": 0})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing stock", func(t *testing.T) {
		fx := createTestCatalogHandler(t)

		rec := doJSON(t, fx.echo, http.MethodPut, "/menu/"+uuid.NewString()+"/stock", map[string]int{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("variant stock is rejected", func(t *testing.T) {
		fx := createTestCatalogHandler(t)
		itemID := uuid.New()
		fx.catalogUC.EXPECT().SetStock(mock.Anything, itemID, 5).Return(domainerrors.ErrInvalidStock)

		rec := doJSON(t, fx.echo, http.MethodPut, "/menu/"+itemID.String()+"/stock", map[string]int{"stock": 5})

		assert.Equal(t, "INVALID_STOCK", errorCode(t, rec))
	})
}

func TestCatalogHandler_DeleteItem(t *testing.T) {
	fx := createTestCatalogHandler(t)
	itemID := uuid.New()
	fx.catalogUC.EXPECT().DeleteItem(mock.Anything, itemID).Return(domainerrors.ErrMenuItemNotFound)

	rec := doJSON(t, fx.echo, http.MethodDelete, "/menu/"+itemID.String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MENU_ITEM_NOT_FOUND", errorCode(t, rec))
}

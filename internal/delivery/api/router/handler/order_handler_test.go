package handler_test

import (
	"net/http"
	"testing"

	"drinkpos/internal/delivery/api/router/handler"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/report"
	mockUsecase "drinkpos/internal/mocks/usecase"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderHandlerFixtures struct {
	echo      *echo.Echo
	orderUC   *mockUsecase.MockOrderUsecase
	auditUC   *mockUsecase.MockAuditUsecase
	revenueUC *mockUsecase.MockRevenueUsecase
	admin     *entity.User
}

func createTestOrderHandler(t *testing.T) orderHandlerFixtures {
	fx := orderHandlerFixtures{
		echo:      newTestEcho(),
		orderUC:   mockUsecase.NewMockOrderUsecase(t),
		auditUC:   mockUsecase.NewMockAuditUsecase(t),
		revenueUC: mockUsecase.NewMockRevenueUsecase(t),
		admin:     newAdmin(),
	}

	orders := handler.NewOrderHandler(handler.OrderHandlerParams{
		OrderUC: fx.orderUC,
		AuditUC: fx.auditUC,
		Logger:  newDiscardLogger(),
	})
	reports := handler.NewReportHandler(handler.ReportHandlerParams{
		RevenueUC: fx.revenueUC,
		Logger:    newDiscardLogger(),
	})

	auth := asUser(fx.admin)
	fx.echo.GET("/orders", orders.ListOrders, auth)
	fx.echo.GET("/orders/:id", orders.GetOrder, auth)
	fx.echo.DELETE("/orders/:id", orders.DeleteOrder, auth)
	fx.echo.GET("/deleted-orders", orders.ListDeletedOrders, auth)
	fx.echo.GET("/reports/revenue", reports.Revenue, auth)
	fx.echo.GET("/dashboard", reports.Dashboard, auth)

	return fx
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("default page", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		fx.orderUC.EXPECT().ListOrders(mock.Anything, 50, 0).Return([]*entity.Order{}, nil)

		rec := doJSON(t, fx.echo, http.MethodGet, "/orders", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		fx.orderUC.EXPECT().ListOrders(mock.Anything, 500, 20).Return([]*entity.Order{}, nil)

		rec := doJSON(t, fx.echo, http.MethodGet, "/orders?limit=10000&offset=20", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	fx := createTestOrderHandler(t)
	orderID := uuid.New()
	fx.orderUC.EXPECT().GetOrder(mock.Anything, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	rec := doJSON(t, fx.echo, http.MethodGet, "/orders/"+orderID.String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", errorCode(t, rec))
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	fx := createTestOrderHandler(t)
	orderID := uuid.New()
	record := &entity.DeletedOrderLog{
		ID:              uuid.New(),
		OriginalOrderID: orderID,
		Total:           40000,
		DeletedBy:       fx.admin.Name,
		DeletedByRole:   entity.RoleAdmin,
	}
	fx.auditUC.EXPECT().DeleteOrder(mock.Anything, orderID, entity.Actor{
		ID:   fx.admin.ID,
		Name: fx.admin.Name,
		Role: entity.RoleAdmin,
	}).Return(record, nil)

	rec := doJSON(t, fx.echo, http.MethodDelete, "/orders/"+orderID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body entity.DeletedOrderLog
	decode(t, rec, &body)
	assert.Equal(t, orderID, body.OriginalOrderID)
	assert.Equal(t, fx.admin.Name, body.DeletedBy)
}

func TestReportHandler_Revenue(t *testing.T) {
	t.Run("query is mapped to the filter", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		staffID := uuid.New()

		fx.revenueUC.EXPECT().Report(mock.Anything, mock.MatchedBy(func(f report.Filter) bool {
			return f.From == "2026-10-01" && f.To == "2026-10-14" &&
				f.PaymentMethod == entity.PaymentTransfer &&
				f.StaffID != nil && *f.StaffID == staffID &&
				f.ItemID == nil &&
				f.MinTotal != nil && *f.MinTotal == 20000 &&
				f.MaxTotal == nil &&
				f.Search == "hùng"
		}), report.SortTotalDesc).Return(&report.Result{Total: 120000, Count: 3}, nil)

		rec := doJSON(t, fx.echo, http.MethodGet,
			"/reports/revenue?from=2026-10-01&to=2026-10-14&method=transfer&staff_id="+staffID.String()+
				"&min_total=20000&q=h%C3%B9ng&sort=price-desc", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body report.Result
		decode(t, rec, &body)
		assert.Equal(t, int64(120000), body.Total)
		assert.Equal(t, 3, body.Count)
	})

	t.Run("malformed min_total", func(t *testing.T) {
		fx := createTestOrderHandler(t)

		rec := doJSON(t, fx.echo, http.MethodGet, "/reports/revenue?min_total=abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed staff id", func(t *testing.T) {
		fx := createTestOrderHandler(t)

		rec := doJSON(t, fx.echo, http.MethodGet, "/reports/revenue?staff_id=42", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportHandler_Dashboard(t *testing.T) {
	fx := createTestOrderHandler(t)
	fx.revenueUC.EXPECT().Dashboard(mock.Anything, "2026-10-14").Return(&usecase.DashboardOutput{
		Date:        "2026-10-14",
		Revenue:     75000,
		OrderCount:  2,
		OnlineStaff: 1,
	}, nil)

	rec := doJSON(t, fx.echo, http.MethodGet, "/dashboard?day=2026-10-14", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body usecase.DashboardOutput
	decode(t, rec, &body)
	assert.Equal(t, int64(75000), body.Revenue)
	assert.Equal(t, int64(1), body.OnlineStaff)
}

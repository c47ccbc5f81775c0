package handler

import (
	"log/slog"
	"net/http"

	"drinkpos/internal/delivery/api/response"
	"drinkpos/internal/domain/entity"
	"drinkpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	AuditUC usecase.AuditUsecase
	Logger  *slog.Logger
}

// OrderHandler serves confirmed orders and their audited deletion.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	auditUC usecase.AuditUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		auditUC: params.AuditUC,
		logger:  params.Logger,
	}
}

// ListOrders pages through orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	limit, offset := pagination(c)

	orders, err := h.orderUC.ListOrders(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder removes an order and records who deleted it
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	record, err := h.auditUC.DeleteOrder(c.Request().Context(), orderID, entity.Actor{
		ID:   user.ID,
		Name: user.DisplayName(),
		Role: user.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// ListDeletedOrders pages through the deletion log, most recent first
func (h *OrderHandler) ListDeletedOrders(c echo.Context) error {
	limit, offset := pagination(c)

	records, err := h.auditUC.ListDeletedOrders(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

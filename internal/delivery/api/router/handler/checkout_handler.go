package handler

import (
	"context"
	"log/slog"
	"net/http"

	"drinkpos/internal/delivery/api/response"
	"drinkpos/internal/domain/entity"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler drives the calling staff member's ordering session.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CartItemRequest names a menu item to add.
type CartItemRequest struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
}

// ChangeQuantityRequest moves a line's quantity by delta; reaching zero removes it.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required,ne=0,min=-999,max=999"`
}

// StageRequest freezes the cart with optional buyer details.
type StageRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	OrderDate     string `json:"order_date" validate:"omitempty,date"`
}

// PaymentMethodRequest selects how the staged order is paid.
type PaymentMethodRequest struct {
	Method entity.PaymentMethod `json:"method" validate:"required,oneof=cash transfer postpaid"`
}

// GetSession returns the caller's session
func (h *CheckoutHandler) GetSession(c echo.Context) error {
	return h.session(c, h.checkoutUC.GetSession)
}

// AddItem adds one unit of an item to the cart
func (h *CheckoutHandler) AddItem(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.checkoutUC.AddItem(c.Request().Context(), user.ID, req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ChangeQuantity adjusts the quantity of a cart line
func (h *CheckoutHandler) ChangeQuantity(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	itemID, err := uuidParam(c, "itemId")
	if err != nil {
		return err
	}

	var req ChangeQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.checkoutUC.ChangeQuantity(c.Request().Context(), user.ID, itemID, req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveItem drops a cart line
func (h *CheckoutHandler) RemoveItem(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	itemID, err := uuidParam(c, "itemId")
	if err != nil {
		return err
	}

	view, err := h.checkoutUC.RemoveItem(c.Request().Context(), user.ID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ClearCart empties the cart
func (h *CheckoutHandler) ClearCart(c echo.Context) error {
	return h.session(c, h.checkoutUC.ClearCart)
}

// Stage freezes the cart for payment
func (h *CheckoutHandler) Stage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req StageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.checkoutUC.Stage(c.Request().Context(), user.ID, usecase.BuyerInfo{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderDate:     req.OrderDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SelectPaymentMethod picks the payment method of the staged order
func (h *CheckoutHandler) SelectPaymentMethod(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PaymentMethodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.checkoutUC.SelectPaymentMethod(c.Request().Context(), user.ID, req.Method)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Cancel returns a staged session to editing with the cart intact
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	return h.session(c, h.checkoutUC.Cancel)
}

// Confirm persists the staged session as an order
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	order, err := h.checkoutUC.Confirm(c.Request().Context(), user.ID, user.DisplayName())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// TransferQR renders the bank transfer QR code of the staged order as PNG
func (h *CheckoutHandler) TransferQR(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	png, err := h.checkoutUC.TransferQR(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *CheckoutHandler) session(c echo.Context, op func(ctx context.Context, staffID uuid.UUID) (*usecase.SessionView, error)) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	view, err := op(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

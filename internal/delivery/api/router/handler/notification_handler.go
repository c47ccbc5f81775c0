package handler

import (
	"log/slog"
	"net/http"

	"drinkpos/internal/delivery/api/response"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the caller's notifications and admin broadcasts
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SendNotificationRequest targets either one user or every active user of a role.
type SendNotificationRequest struct {
	UserID  *uuid.UUID              `json:"user_id" validate:"required_without=Role"`
	Role    entity.Role             `json:"role" validate:"required_without=UserID,omitempty,oneof=admin staff"`
	Message string                  `json:"message" validate:"required"`
	Type    entity.NotificationType `json:"type" validate:"omitempty,oneof=system order shift"`
}

// SendNotificationResponse reports how many users were notified.
type SendNotificationResponse struct {
	Recipients int `json:"recipients"`
}

// UnreadCountResponse is the caller's unread badge counter.
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// MarkAllReadResponse reports how many notifications flipped to read.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// ListNotifications pages through the caller's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	limit, offset := pagination(c)
	notifications, err := h.notificationUC.ListForUser(c.Request().Context(), user.ID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// UnreadCount counts the caller's unread notifications
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.CountUnread(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UnreadCountResponse{Unread: count})
}

// MarkRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), user.ID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Notification marked as read"})
}

// MarkAllRead marks every unread notification of the caller as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MarkAllReadResponse{Updated: updated})
}

// Send notifies one user or a whole role
func (h *NotificationHandler) Send(c echo.Context) error {
	var req SendNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if req.UserID != nil {
		if req.Role != "" {
			return domainerrors.ErrValidationFailed.WithDetails("user_id and role are mutually exclusive")
		}
		if _, err := h.notificationUC.Notify(ctx, *req.UserID, req.Message, req.Type); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, SendNotificationResponse{Recipients: 1})
	}

	recipients, err := h.notificationUC.NotifyRole(ctx, req.Role, req.Message, req.Type)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SendNotificationResponse{Recipients: recipients})
}

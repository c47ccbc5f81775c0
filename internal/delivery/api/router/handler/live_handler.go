package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "drinkpos/internal/delivery/context"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/infra/livequery"
	"drinkpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	liveKeepAlive  = 25 * time.Second
	liveOrderLimit = 200
	liveInboxLimit = 50
)

// liveWatcher is the part of the live query hub used by LiveHandler.
type liveWatcher interface {
	Watch(ctx context.Context, topic string, query livequery.QueryFunc) (livequery.Subscription, error)
}

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	Hub            *livequery.Hub
	CatalogUC      usecase.CatalogUsecase
	OrderUC        usecase.OrderUsecase
	AuditUC        usecase.AuditUsecase
	UserUC         usecase.UserUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// LiveHandler streams live query snapshots as server-sent events.
// Every stream sends the current result set first and a fresh one after each change of its topic.
type LiveHandler struct {
	hub            liveWatcher
	catalogUC      usecase.CatalogUsecase
	orderUC        usecase.OrderUsecase
	auditUC        usecase.AuditUsecase
	userUC         usecase.UserUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewLiveHandler is the constructor for LiveHandler
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	return &LiveHandler{
		hub:            params.Hub,
		catalogUC:      params.CatalogUC,
		orderUC:        params.OrderUC,
		auditUC:        params.AuditUC,
		userUC:         params.UserUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// NotificationSnapshot is the payload of the notification stream.
type NotificationSnapshot struct {
	Unread        int64 `json:"unread"`
	Notifications any   `json:"notifications"`
}

// Menu streams the menu
func (h *LiveHandler) Menu(c echo.Context) error {
	return h.stream(c, service.TopicMenu, func(ctx context.Context) (any, error) {
		return h.catalogUC.ListItems(ctx)
	})
}

// Orders streams the most recent orders
func (h *LiveHandler) Orders(c echo.Context) error {
	return h.stream(c, service.TopicOrders, func(ctx context.Context) (any, error) {
		return h.orderUC.ListOrders(ctx, liveOrderLimit, 0)
	})
}

// DeletedOrders streams the deletion log
func (h *LiveHandler) DeletedOrders(c echo.Context) error {
	return h.stream(c, service.TopicDeletedOrders, func(ctx context.Context) (any, error) {
		return h.auditUC.ListDeletedOrders(ctx, liveOrderLimit, 0)
	})
}

// Users streams the account list
func (h *LiveHandler) Users(c echo.Context) error {
	return h.stream(c, service.TopicUsers, func(ctx context.Context) (any, error) {
		users, err := h.userUC.ListUsers(ctx, repository.UserFilter{})
		if err != nil {
			return nil, err
		}

		return newUserResponses(users), nil
	})
}

// Notifications streams the caller's inbox with its unread counter
func (h *LiveHandler) Notifications(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return h.stream(c, service.NotificationsTopic(user.ID.String()), func(ctx context.Context) (any, error) {
		notifications, err := h.notificationUC.ListForUser(ctx, user.ID, liveInboxLimit, 0)
		if err != nil {
			return nil, err
		}

		unread, err := h.notificationUC.CountUnread(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		return NotificationSnapshot{Unread: unread, Notifications: notifications}, nil
	})
}

// Me streams the caller's own account so clients notice a lock or role change
func (h *LiveHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return h.stream(c, service.UserTopic(user.ID.String()), func(ctx context.Context) (any, error) {
		current, err := h.userUC.GetUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		return newUserResponse(current), nil
	})
}

func (h *LiveHandler) stream(c echo.Context, topic string, query livequery.QueryFunc) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	sub, err := h.hub.Watch(ctx, topic, query)
	if err != nil {
		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	defer sub.Cancel()

	res := c.Response()
	controller := http.NewResponseController(res.Writer)
	// Streams outlive the server write timeout.
	if err := controller.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		logger.Warn("Failed to lift write deadline", slog.Any("error", err))
	}

	header := res.Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set(echo.HeaderConnection, "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	flush := func() error {
		if err := controller.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
			return err
		}

		return nil
	}
	if err := flush(); err != nil {
		return nil
	}

	keepAlive := time.NewTicker(liveKeepAlive)
	defer keepAlive.Stop()

	logger.Debug("Live query opened", slog.String("topic", topic))
	defer logger.Debug("Live query closed", slog.String("topic", topic))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-keepAlive.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
		case snapshot, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			if err := writeSnapshot(res, snapshot); err != nil {
				logger.Debug("Live query write failed", slog.String("topic", topic), slog.Any("error", err))

				return nil
			}
		}
		if err := flush(); err != nil {
			return nil
		}
	}
}

type liveErrorEvent struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeSnapshot writes one SSE frame: "snapshot" with the result set, or "error" when the query failed.
func writeSnapshot(w http.ResponseWriter, snapshot livequery.Snapshot) error {
	event, payload := "snapshot", snapshot.Data
	if snapshot.Err != nil {
		event = "error"
		body := liveErrorEvent{Code: domainerrors.ErrInternalError.ErrorCode(), Message: "query failed"}
		if appErr, ok := domainerrors.AsAppError(snapshot.Err); ok {
			body = liveErrorEvent{Code: appErr.ErrorCode(), Message: appErr.Message()}
		}
		payload = body
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)

	return err
}

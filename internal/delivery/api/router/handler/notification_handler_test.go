package handler_test

import (
	"net/http"
	"testing"

	"drinkpos/internal/delivery/api/router/handler"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	mockUsecase "drinkpos/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationHandlerFixtures struct {
	echo           *echo.Echo
	notificationUC *mockUsecase.MockNotificationUsecase
	user           *entity.User
}

func createTestNotificationHandler(t *testing.T) notificationHandlerFixtures {
	fx := notificationHandlerFixtures{
		echo:           newTestEcho(),
		notificationUC: mockUsecase.NewMockNotificationUsecase(t),
		user:           newStaff(),
	}

	h := handler.NewNotificationHandler(handler.NotificationHandlerParams{
		NotificationUC: fx.notificationUC,
		Logger:         newDiscardLogger(),
	})

	g := fx.echo.Group("/notifications", asUser(fx.user))
	g.GET("", h.ListNotifications)
	g.GET("/unread-count", h.UnreadCount)
	g.POST("/:id/read", h.MarkRead)
	g.POST("/read-all", h.MarkAllRead)
	g.POST("", h.Send)

	return fx
}

func TestNotificationHandler_Inbox(t *testing.T) {
	t.Run("list uses pagination", func(t *testing.T) {
		fx := createTestNotificationHandler(t)
		fx.notificationUC.EXPECT().ListForUser(mock.Anything, fx.user.ID, 10, 5).
			Return([]*entity.Notification{{ID: uuid.New(), UserID: fx.user.ID, Message: "Ca mới", Type: entity.NotificationTypeShift}}, nil)

		rec := doJSON(t, fx.echo, http.MethodGet, "/notifications?limit=10&offset=5", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []entity.Notification
		decode(t, rec, &body)
		require.Len(t, body, 1)
		assert.Equal(t, entity.NotificationTypeShift, body[0].Type)
	})

	t.Run("unread count", func(t *testing.T) {
		fx := createTestNotificationHandler(t)
		fx.notificationUC.EXPECT().CountUnread(mock.Anything, fx.user.ID).Return(int64(3), nil)

		rec := doJSON(t, fx.echo, http.MethodGet, "/notifications/unread-count", nil)

		var body handler.UnreadCountResponse
		decode(t, rec, &body)
		assert.Equal(t, int64(3), body.Unread)
	})

	t.Run("mark read of someone else's notification", func(t *testing.T) {
		fx := createTestNotificationHandler(t)
		id := uuid.New()
		fx.notificationUC.EXPECT().MarkRead(mock.Anything, fx.user.ID, id).Return(domainerrors.ErrForbidden)

		rec := doJSON(t, fx.echo, http.MethodPost, "/notifications/"+id.String()+"/read", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("mark all read", func(t *testing.T) {
		fx := createTestNotificationHandler(t)
		fx.notificationUC.EXPECT().MarkAllRead(mock.Anything, fx.user.ID).Return(int64(4), nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/notifications/read-all", nil)

		var body handler.MarkAllReadResponse
		decode(t, rec, &body)
		assert.Equal(t, int64(4), body.Updated)
	})
}

func TestNotificationHandler_Send(t *testing.T) {
	t.Run("to one user", func(t *testing.T) {
		fx := createTestNotificationHandler(t)
		target := uuid.New()
		fx.notificationUC.EXPECT().Notify(mock.Anything, target, "Nhớ đóng cửa", entity.NotificationType("")).
			Return(&entity.Notification{ID: uuid.New()}, nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/notifications", map[string]string{
			"user_id": target.String(), "message": "Nhớ đóng cửa",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var body handler.SendNotificationResponse
		decode(t, rec, &body)
		assert.Equal(t, 1, body.Recipients)
	})

	t.Run("to a role", func(t *testing.T) {
		fx := createTestNotificationHandler(t)
		fx.notificationUC.EXPECT().NotifyRole(mock.Anything, entity.RoleStaff, "Họp lúc 9h", entity.NotificationTypeSystem).
			Return(5, nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/notifications", map[string]string{
			"role": "staff", "message": "Họp lúc 9h", "type": "system",
		})

		var body handler.SendNotificationResponse
		decode(t, rec, &body)
		assert.Equal(t, 5, body.Recipients)
	})

	t.Run("needs a target", func(t *testing.T) {
		fx := createTestNotificationHandler(t)

		rec := doJSON(t, fx.echo, http.MethodPost, "/notifications", map[string]string{"message": "x"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("both targets", func(t *testing.T) {
		fx := createTestNotificationHandler(t)

		rec := doJSON(t, fx.echo, http.MethodPost, "/notifications", map[string]string{
			"user_id": uuid.NewString(), "role": "staff", "message": "x",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

package handler_test

import (
	"net/http"
	"testing"

	"drinkpos/internal/delivery/api/router/handler"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	mockUsecase "drinkpos/internal/mocks/usecase"
	"drinkpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	echo   *echo.Echo
	userUC *mockUsecase.MockUserUsecase
}

func createTestUserHandler(t *testing.T, caller *entity.User) userHandlerFixtures {
	fx := userHandlerFixtures{
		echo:   newTestEcho(),
		userUC: mockUsecase.NewMockUserUsecase(t),
	}

	h := handler.NewUserHandler(handler.UserHandlerParams{
		UserUC: fx.userUC,
		Logger: newDiscardLogger(),
	})

	fx.echo.POST("/auth/register", h.Register)
	fx.echo.POST("/auth/login", h.Login)
	auth := asUser(caller)
	fx.echo.POST("/auth/logout", h.Logout, auth)
	fx.echo.GET("/me", h.GetProfile, auth)
	fx.echo.PATCH("/me", h.UpdateProfile, auth)
	fx.echo.GET("/users", h.ListUsers, auth)
	fx.echo.POST("/users", h.CreateUser, auth)
	fx.echo.POST("/users/:id/approve", h.ApproveUser, auth)
	fx.echo.POST("/users/:id/lock", h.LockUser, auth)
	fx.echo.DELETE("/users/:id", h.DeleteUser, auth)

	return fx
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("pending account is created", func(t *testing.T) {
		fx := createTestUserHandler(t, nil)
		pending := newStaff()
		pending.Status = entity.UserStatusPending

		fx.userUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Lan",
			Phone:    "0901234567",
			Password: "secret123",
		}).Return(pending, nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/auth/register", map[string]string{
			"name": "Lan", "phone": "0901234567", "password": "secret123",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var body handler.UserResponse
		decode(t, rec, &body)
		assert.Equal(t, pending.ID.String(), body.ID)
		assert.Equal(t, entity.UserStatusPending, body.Status)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("missing phone is rejected before the usecase", func(t *testing.T) {
		fx := createTestUserHandler(t, nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/auth/register", map[string]string{
			"name": "Lan", "password": "secret123",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("duplicate phone", func(t *testing.T) {
		fx := createTestUserHandler(t, nil)
		fx.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := doJSON(t, fx.echo, http.MethodPost, "/auth/register", map[string]string{
			"name": "Lan", "phone": "0901234567", "password": "secret123",
		})

		assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("returns token and user", func(t *testing.T) {
		fx := createTestUserHandler(t, nil)
		staff := newStaff()

		fx.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Identifier: "0901234567", Password: "secret123"}).
			Return(&usecase.LoginOutput{AccessToken: "token", User: staff}, nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/auth/login", map[string]string{
			"identifier": "0901234567", "password": "secret123",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var body handler.AuthResponse
		decode(t, rec, &body)
		assert.Equal(t, "token", body.AccessToken)
		assert.Equal(t, staff.ID.String(), body.User.ID)
	})

	t.Run("locked account", func(t *testing.T) {
		fx := createTestUserHandler(t, nil)
		fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAccountLocked)

		rec := doJSON(t, fx.echo, http.MethodPost, "/auth/login", map[string]string{
			"identifier": "0901234567", "password": "secret123",
		})

		assert.Equal(t, "ACCOUNT_LOCKED", errorCode(t, rec))
	})
}

func TestUserHandler_Profile(t *testing.T) {
	staff := newStaff()

	t.Run("get profile without a user", func(t *testing.T) {
		fx := createTestUserHandler(t, nil)

		rec := doJSON(t, fx.echo, http.MethodGet, "/me", nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
	})

	t.Run("update passes only present fields", func(t *testing.T) {
		fx := createTestUserHandler(t, staff)
		updated := *staff
		updated.Name = "Lan Anh"

		fx.userUC.EXPECT().UpdateProfile(mock.Anything, staff.ID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Name != nil && *in.Name == "Lan Anh" && in.Password == nil && in.Avatar == nil
		})).Return(&updated, nil)

		rec := doJSON(t, fx.echo, http.MethodPatch, "/me", map[string]string{"name": "Lan Anh"})

		require.Equal(t, http.StatusOK, rec.Code)
		var body handler.UserResponse
		decode(t, rec, &body)
		assert.Equal(t, "Lan Anh", body.Name)
	})

	t.Run("logout", func(t *testing.T) {
		fx := createTestUserHandler(t, staff)
		fx.userUC.EXPECT().Logout(mock.Anything, staff.ID).Return(nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/auth/logout", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserHandler_Admin(t *testing.T) {
	admin := newAdmin()

	t.Run("list filters by role and status", func(t *testing.T) {
		fx := createTestUserHandler(t, admin)
		pending := newStaff()
		pending.Status = entity.UserStatusPending

		fx.userUC.EXPECT().ListUsers(mock.Anything, mock.MatchedBy(func(f repository.UserFilter) bool {
			return f.Role != nil && *f.Role == entity.RoleStaff && f.Status != nil && *f.Status == entity.UserStatusPending
		})).Return([]*entity.User{pending}, nil)

		rec := doJSON(t, fx.echo, http.MethodGet, "/users?role=staff&status=pending", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []handler.UserResponse
		decode(t, rec, &body)
		require.Len(t, body, 1)
		assert.Equal(t, pending.ID.String(), body[0].ID)
	})

	t.Run("list rejects unknown role", func(t *testing.T) {
		fx := createTestUserHandler(t, admin)

		rec := doJSON(t, fx.echo, http.MethodGet, "/users?role=merchant", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create validates role", func(t *testing.T) {
		fx := createTestUserHandler(t, admin)

		rec := doJSON(t, fx.echo, http.MethodPost, "/users", map[string]string{
			"name": "Minh", "username": "minh", "password": "secret123", "role": "owner",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("approve", func(t *testing.T) {
		fx := createTestUserHandler(t, admin)
		target := newStaff()
		fx.userUC.EXPECT().Approve(mock.Anything, target.ID).Return(nil)

		rec := doJSON(t, fx.echo, http.MethodPost, "/users/"+target.ID.String()+"/approve", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("lock of a pending account is a bad transition", func(t *testing.T) {
		fx := createTestUserHandler(t, admin)
		target := newStaff()
		fx.userUC.EXPECT().Lock(mock.Anything, target.ID).Return(domainerrors.ErrInvalidStatusTransition)

		rec := doJSON(t, fx.echo, http.MethodPost, "/users/"+target.ID.String()+"/lock", nil)

		assert.Equal(t, "INVALID_STATUS_TRANSITION", errorCode(t, rec))
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestUserHandler(t, admin)

		rec := doJSON(t, fx.echo, http.MethodPost, "/users/not-a-uuid/approve", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin cannot delete themselves", func(t *testing.T) {
		fx := createTestUserHandler(t, admin)

		rec := doJSON(t, fx.echo, http.MethodDelete, "/users/"+admin.ID.String(), nil)

		assert.Equal(t, "CONFLICT", errorCode(t, rec))
	})
}

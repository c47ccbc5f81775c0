package handler

import (
	"context"
	"log/slog"
	"net/http"

	"drinkpos/internal/delivery/api/response"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account and staff management handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is a staff self-registration. The phone doubles as username.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=8,max=20"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest accepts a username or a phone as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// CreateUserRequest is an admin-created account, active immediately.
type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Username string      `json:"username" validate:"required"`
	Phone    string      `json:"phone"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required,oneof=admin staff"`
}

// UpdateProfileRequest changes only the fields present.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Avatar   *string `json:"avatar"`
}

// AuthResponse is returned on login.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Username string            `json:"username"`
	Phone    string            `json:"phone,omitempty"`
	Role     entity.Role       `json:"role"`
	Status   entity.UserStatus `json:"status"`
	IsOnline bool              `json:"is_online"`
	Avatar   string            `json:"avatar,omitempty"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Username: user.Username,
		Phone:    user.Phone,
		Role:     user.Role,
		Status:   user.Status,
		IsOnline: user.IsOnline,
		Avatar:   user.Avatar,
	}
}

func newUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}

// Register handles staff self-registration; the account waits for admin approval.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Login handles username/phone and password login
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		AccessToken: out.AccessToken,
		User:        newUserResponse(out.User),
	})
}

// Logout marks the caller offline
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), user.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Logged out"})
}

// GetProfile returns the caller
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateProfile changes the caller's name, password or avatar
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.userUC.UpdateProfile(c.Request().Context(), user.ID, &usecase.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(updated))
}

// ListUsers lists accounts, optionally filtered by role and status
func (h *UserHandler) ListUsers(c echo.Context) error {
	var filter repository.UserFilter

	if raw := c.QueryParam("role"); raw != "" {
		role := entity.Role(raw)
		if !role.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("invalid role")
		}
		filter.Role = &role
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.UserStatus(raw)
		if !status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("invalid status")
		}
		filter.Status = &status
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users))
}

// CreateUser creates an active account of any role
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// GetUser returns one account
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// ApproveUser activates a pending registration
func (h *UserHandler) ApproveUser(c echo.Context) error {
	return h.changeStatus(c, h.userUC.Approve, "User approved")
}

// LockUser locks an active account
func (h *UserHandler) LockUser(c echo.Context) error {
	return h.changeStatus(c, h.userUC.Lock, "User locked")
}

// UnlockUser reactivates a locked account
func (h *UserHandler) UnlockUser(c echo.Context) error {
	return h.changeStatus(c, h.userUC.Unlock, "User unlocked")
}

// DeleteUser removes an account
func (h *UserHandler) DeleteUser(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if userID == caller.ID {
		return domainerrors.ErrConflict.WithDetails("cannot delete your own account")
	}

	if err := h.userUC.Delete(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "User deleted"})
}

func (h *UserHandler) changeStatus(c echo.Context, change func(ctx context.Context, userID uuid.UUID) error, message string) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := change(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: message})
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data a staff member submits to sign up.
type RegisterInput struct {
	Name     string
	Phone    string
	Password string
}

// CreateUserInput defines an account created by an admin.
type CreateUserInput struct {
	Name     string
	Username string
	Phone    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Identifier string // Username or phone.
	Password   string
}

// UpdateProfileInput carries profile changes. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name     *string
	Password *string
	Avatar   *string
}

// --- Output DTOs ---

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Authorize(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Approve(ctx context.Context, userID uuid.UUID) error
	Lock(ctx context.Context, userID uuid.UUID) error
	Unlock(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

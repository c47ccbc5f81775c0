// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username or phone is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserFilter narrows ListUsers. Nil fields match everything.
type UserFilter struct {
	Role   *entity.Role
	Status *entity.UserStatus
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIdentifier retrieves a user whose username or phone equals identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// ExistsByUsernameOrPhone reports whether any user already uses username or phone.
	ExistsByUsernameOrPhone(ctx context.Context, username, phone string) (bool, error)

	// List retrieves users matching filter ordered by name.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// Update modifies name, password hash and avatar.
	Update(ctx context.Context, user *entity.User) error

	// UpdateStatus changes the account status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error

	// SetOnline changes the presence flag.
	SetOnline(ctx context.Context, id uuid.UUID, online bool) error

	// Delete removes a user.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountOnline counts users currently flagged online with the given role.
	CountOnline(ctx context.Context, role entity.Role) (int64, error)
}

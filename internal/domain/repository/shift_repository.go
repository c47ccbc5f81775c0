// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrShiftNotFound is returned when a shift is not found.
var ErrShiftNotFound = errors.New("shift not found")

// ShiftRepository defines the persistence operations of shifts.
type ShiftRepository interface {
	// Create persists a new shift.
	Create(ctx context.Context, shift *entity.Shift) error

	// FindByID retrieves a single shift.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error)

	// List retrieves shifts with from <= date <= to (YYYY-MM-DD); empty bounds are open.
	List(ctx context.Context, from, to string) ([]*entity.Shift, error)

	// ListByStaff retrieves the shifts a staff member is scheduled on.
	ListByStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.Shift, error)

	// Delete removes a shift.
	Delete(ctx context.Context, id uuid.UUID) error
}

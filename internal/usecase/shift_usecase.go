package usecase

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShiftInput defines a new shift. Empty times fall back to 08:00-16:00.
type CreateShiftInput struct {
	StaffIDs  []uuid.UUID
	Date      string
	StartTime string
	EndTime   string
	Note      string
}

// ShiftUsecase defines shift scheduling.
type ShiftUsecase interface {
	CreateShift(ctx context.Context, input *CreateShiftInput) (*entity.Shift, error)
	ListShifts(ctx context.Context, from, to string) ([]*entity.Shift, error)
	ListShiftsForStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.Shift, error)
	DeleteShift(ctx context.Context, id uuid.UUID) error
}

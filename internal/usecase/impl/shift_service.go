package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"drinkpos/config"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/usecase"
	"drinkpos/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shiftService struct {
	shiftRepo     repository.ShiftRepository
	notifications usecase.NotificationUsecase
	location      *time.Location
	logger        *slog.Logger
}

// ShiftServiceParams holds dependencies for ShiftService, injected by Fx.
type ShiftServiceParams struct {
	fx.In

	ShiftRepo     repository.ShiftRepository
	Notifications usecase.NotificationUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewShiftService creates a new shift service instance
func NewShiftService(params ShiftServiceParams) usecase.ShiftUsecase {
	return &shiftService{
		shiftRepo:     params.ShiftRepo,
		notifications: params.Notifications,
		location:      shopConfig(params.Config).Location(),
		logger:        params.Logger,
	}
}

func (s *shiftService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateShift schedules the staff members and notifies each of them
func (s *shiftService) CreateShift(ctx context.Context, input *usecase.CreateShiftInput) (*entity.Shift, error) {
	shift, err := s.buildShift(input)
	if err != nil {
		return nil, err
	}

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, errors.Wrap(err, "failed to create shift")
	}

	message := fmt.Sprintf("Bạn có ca làm mới ngày %s (%s - %s)", shift.Date, shift.StartTime, shift.EndTime)
	for _, staffID := range shift.StaffIDs {
		if _, err := s.notifications.Notify(ctx, staffID, message, entity.NotificationTypeShift); err != nil {
			s.log(ctx).Warn("Failed to notify staff about shift",
				slog.String("shiftID", shift.ID.String()),
				slog.String("staffID", staffID.String()),
				slog.Any("error", err),
			)
		}
	}

	return shift, nil
}

func (s *shiftService) buildShift(input *usecase.CreateShiftInput) (*entity.Shift, error) {
	staffIDs := make([]uuid.UUID, 0, len(input.StaffIDs))
	seen := make(map[uuid.UUID]struct{}, len(input.StaffIDs))
	for _, id := range input.StaffIDs {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		staffIDs = append(staffIDs, id)
	}
	if len(staffIDs) == 0 {
		return nil, domainerrors.ErrInvalidShift.WithDetails("at least one staff member is required")
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		return nil, domainerrors.ErrInvalidShift.WithDetails("date is required")
	}
	if _, err := util.ParseDate(date, s.location); err != nil {
		return nil, domainerrors.ErrInvalidShift.WithDetails("date must be YYYY-MM-DD")
	}

	start := strings.TrimSpace(input.StartTime)
	if start == "" {
		start = entity.DefaultShiftStart
	}
	end := strings.TrimSpace(input.EndTime)
	if end == "" {
		end = entity.DefaultShiftEnd
	}

	startMinutes, err := util.ParseClock(start)
	if err != nil {
		return nil, domainerrors.ErrInvalidShift.WithDetails("start time must be HH:MM")
	}
	endMinutes, err := util.ParseClock(end)
	if err != nil {
		return nil, domainerrors.ErrInvalidShift.WithDetails("end time must be HH:MM")
	}
	if endMinutes <= startMinutes {
		return nil, domainerrors.ErrInvalidShift.WithDetails("end time must be after start time")
	}

	return &entity.Shift{
		ID:        uuid.New(),
		StaffIDs:  staffIDs,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Note:      strings.TrimSpace(input.Note),
	}, nil
}

// ListShifts returns shifts between from and to inclusive
func (s *shiftService) ListShifts(ctx context.Context, from, to string) ([]*entity.Shift, error) {
	if from != "" && to != "" && to < from {
		return nil, domainerrors.ErrValidationFailed.WithDetails("to must not be before from")
	}

	shifts, err := s.shiftRepo.List(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shifts")
	}

	return shifts, nil
}

// ListShiftsForStaff returns the shifts of one staff member
func (s *shiftService) ListShiftsForStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.Shift, error) {
	shifts, err := s.shiftRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff shifts")
	}

	return shifts, nil
}

// DeleteShift removes a shift
func (s *shiftService) DeleteShift(ctx context.Context, id uuid.UUID) error {
	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			return domainerrors.ErrShiftNotFound
		}

		return errors.Wrap(err, "failed to delete shift")
	}

	return nil
}

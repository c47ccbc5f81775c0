package impl

import (
	"context"
	"testing"

	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	mockRepo "drinkpos/internal/mocks/repository"
	mockUsecase "drinkpos/internal/mocks/usecase"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shiftServiceFixtures holds all test dependencies for shift service tests.
type shiftServiceFixtures struct {
	service       usecase.ShiftUsecase
	shiftRepo     *mockRepo.MockShiftRepository
	notifications *mockUsecase.MockNotificationUsecase
}

func createTestShiftService(t *testing.T) shiftServiceFixtures {
	fx := shiftServiceFixtures{
		shiftRepo:     mockRepo.NewMockShiftRepository(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
	}

	fx.service = NewShiftService(ShiftServiceParams{
		ShiftRepo:     fx.shiftRepo,
		Notifications: fx.notifications,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return fx
}

func TestShiftService_CreateShift_DefaultsAndNotifies(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	lan, minh := uuid.New(), uuid.New()

	fx.shiftRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.Shift) bool {
		return len(s.StaffIDs) == 2 && s.StartTime == "08:00" && s.EndTime == "16:00" && s.Date == "2026-10-20"
	})).Return(nil)

	message := "Bạn có ca làm mới ngày 2026-10-20 (08:00 - 16:00)"
	fx.notifications.EXPECT().Notify(ctx, lan, message, entity.NotificationTypeShift).Return(&entity.Notification{}, nil)
	fx.notifications.EXPECT().Notify(ctx, minh, message, entity.NotificationTypeShift).Return(nil, errors.New("push down"))

	shift, err := fx.service.CreateShift(ctx, &usecase.CreateShiftInput{
		StaffIDs: []uuid.UUID{lan, minh, lan},
		Date:     "2026-10-20",
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{lan, minh}, shift.StaffIDs)
}

func TestShiftService_CreateShift_Validation(t *testing.T) {
	staff := []uuid.UUID{uuid.New()}

	tests := []struct {
		name  string
		input usecase.CreateShiftInput
	}{
		{name: "no staff", input: usecase.CreateShiftInput{Date: "2026-10-20"}},
		{name: "no date", input: usecase.CreateShiftInput{StaffIDs: staff}},
		{name: "bad date", input: usecase.CreateShiftInput{StaffIDs: staff, Date: "20/10/2026"}},
		{name: "bad clock", input: usecase.CreateShiftInput{StaffIDs: staff, Date: "2026-10-20", StartTime: "8h"}},
		{name: "end before start", input: usecase.CreateShiftInput{StaffIDs: staff, Date: "2026-10-20", StartTime: "14:00", EndTime: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShiftService(t)

			_, err := fx.service.CreateShift(context.Background(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidShift)
		})
	}
}

func TestShiftService_ListAndDelete(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	staffID := uuid.New()
	shifts := []*entity.Shift{{ID: uuid.New(), StaffIDs: []uuid.UUID{staffID}}}

	fx.shiftRepo.EXPECT().List(ctx, "2026-10-01", "2026-10-31").Return(shifts, nil)
	fx.shiftRepo.EXPECT().ListByStaff(ctx, staffID).Return(shifts, nil)
	fx.shiftRepo.EXPECT().Delete(ctx, shifts[0].ID).Return(repository.ErrShiftNotFound)

	got, err := fx.service.ListShifts(ctx, "2026-10-01", "2026-10-31")
	require.NoError(t, err)
	assert.Equal(t, shifts, got)

	_, err = fx.service.ListShifts(ctx, "2026-10-31", "2026-10-01")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	got, err = fx.service.ListShiftsForStaff(ctx, staffID)
	require.NoError(t, err)
	assert.True(t, got[0].HasStaff(staffID))

	assert.ErrorIs(t, fx.service.DeleteShift(ctx, shifts[0].ID), domainerrors.ErrShiftNotFound)
}

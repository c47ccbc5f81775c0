package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	mockRepo "drinkpos/internal/mocks/repository"
	mockService "drinkpos/internal/mocks/service"
	mockUsecase "drinkpos/internal/mocks/usecase"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkInServiceFixtures holds all test dependencies for check-in service tests.
type checkInServiceFixtures struct {
	service       usecase.CheckInUsecase
	checkInRepo   *mockRepo.MockCheckInRepository
	userRepo      *mockRepo.MockUserRepository
	uploader      *mockService.MockAssetUploader
	notifications *mockUsecase.MockNotificationUsecase
}

func createTestCheckInService(t *testing.T) checkInServiceFixtures {
	fx := checkInServiceFixtures{
		checkInRepo:   mockRepo.NewMockCheckInRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		uploader:      mockService.NewMockAssetUploader(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
	}

	fx.service = NewCheckInService(CheckInServiceParams{
		CheckInRepo:   fx.checkInRepo,
		UserRepo:      fx.userRepo,
		Uploader:      fx.uploader,
		Notifications: fx.notifications,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return fx
}

func TestCheckInService_WithCoordinates(t *testing.T) {
	fx := createTestCheckInService(t)
	ctx := context.Background()
	staff := &entity.User{ID: uuid.New(), Name: "Lan", Role: entity.RoleStaff, Status: entity.UserStatusActive}

	fx.userRepo.EXPECT().FindByID(ctx, staff.ID).Return(staff, nil)
	fx.checkInRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.CheckInRecord) bool {
		return r.Latitude == 10.77 && r.Longitude == 106.69 && r.Address == "Quận 1" && r.ImageURL == ""
	})).Return(nil)
	fx.notifications.EXPECT().
		NotifyRole(ctx, entity.RoleAdmin, mock.MatchedBy(func(msg string) bool { return strings.HasPrefix(msg, "Lan đã check-in lúc ") }), entity.NotificationTypeSystem).
		Return(1, nil)

	record, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{
		StaffID:  staff.ID,
		Type:     entity.CheckInTypeIn,
		Location: &usecase.GeoLocation{Latitude: 10.77, Longitude: 106.69, Address: " Quận 1 "},
	})
	require.NoError(t, err)
	assert.False(t, record.UsedPhotoFallback())
}

func TestCheckInService_PhotoFallback(t *testing.T) {
	fx := createTestCheckInService(t)
	ctx := context.Background()
	staff := &entity.User{ID: uuid.New(), Name: "Lan"}

	fx.userRepo.EXPECT().FindByID(ctx, staff.ID).Return(staff, nil)
	fx.uploader.EXPECT().Upload(ctx, mock.Anything, "selfie.jpg", FolderCheckIn).Return("https://cdn.example/nc_checkin/selfie.jpg", nil)
	fx.checkInRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.notifications.EXPECT().NotifyRole(ctx, entity.RoleAdmin, mock.Anything, entity.NotificationTypeSystem).Return(0, errors.New("db down"))

	record, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{
		StaffID: staff.ID,
		Type:    entity.CheckInTypeOut,
		Photo:   &usecase.Photo{File: strings.NewReader("jpeg"), Filename: "selfie.jpg"},
	})
	require.NoError(t, err)
	assert.True(t, record.UsedPhotoFallback())
	assert.Zero(t, record.Latitude)
}

func TestCheckInService_UploadTimeout(t *testing.T) {
	fx := createTestCheckInService(t)
	ctx := context.Background()
	staff := &entity.User{ID: uuid.New(), Name: "Lan"}

	fx.userRepo.EXPECT().FindByID(ctx, staff.ID).Return(staff, nil)
	fx.uploader.EXPECT().Upload(ctx, mock.Anything, mock.Anything, FolderCheckIn).Return("", domainerrors.ErrUploadTimeout)

	_, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{
		StaffID: staff.ID,
		Type:    entity.CheckInTypeIn,
		Photo:   &usecase.Photo{File: strings.NewReader("jpeg"), Filename: "selfie.jpg"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadTimeout)
}

func TestCheckInService_Validation(t *testing.T) {
	ctx := context.Background()
	staff := &entity.User{ID: uuid.New(), Name: "Lan"}

	t.Run("no evidence", func(t *testing.T) {
		fx := createTestCheckInService(t)
		fx.userRepo.EXPECT().FindByID(ctx, staff.ID).Return(staff, nil)

		_, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{StaffID: staff.ID, Type: entity.CheckInTypeIn})
		assert.ErrorIs(t, err, domainerrors.ErrMissingCheckInData)
	})

	t.Run("bad type", func(t *testing.T) {
		fx := createTestCheckInService(t)

		_, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{StaffID: staff.ID, Type: "lunch"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		fx := createTestCheckInService(t)
		fx.userRepo.EXPECT().FindByID(ctx, staff.ID).Return(staff, nil)

		_, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{StaffID: staff.ID, Type: entity.CheckInTypeIn, Location: &usecase.GeoLocation{Latitude: 120}})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown staff", func(t *testing.T) {
		fx := createTestCheckInService(t)
		fx.userRepo.EXPECT().FindByID(ctx, staff.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{StaffID: staff.ID, Type: entity.CheckInTypeIn, Location: &usecase.GeoLocation{}})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestCheckInService_ListCheckIns_DayBounds(t *testing.T) {
	fx := createTestCheckInService(t)
	ctx := context.Background()
	staffID := uuid.New()
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")

	fx.checkInRepo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.CheckInFilter) bool {
		return f.StaffID != nil && *f.StaffID == staffID &&
			f.From.Equal(time.Date(2026, 10, 13, 0, 0, 0, 0, loc)) &&
			f.To.Equal(time.Date(2026, 10, 14, 0, 0, 0, 0, loc))
	})).Return(nil, nil)

	_, err := fx.service.ListCheckIns(ctx, &staffID, "2026-10-13")
	require.NoError(t, err)

	_, err = fx.service.ListCheckIns(ctx, nil, "yesterday")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

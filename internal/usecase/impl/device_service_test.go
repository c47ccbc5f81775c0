package impl

import (
	"context"
	"testing"

	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	mockRepo "drinkpos/internal/mocks/repository"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	staffID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, staffID).Return([]*entity.UserDevice{}, nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

	device, err := fx.service.RegisterDevice(ctx, staffID, &usecase.DeviceInfo{
		FCMToken: "till-1-token",
		DeviceID: "till-1",
		Platform: entity.PlatformAndroid,
	})
	require.NoError(t, err)
	assert.Equal(t, staffID, device.UserID)
	assert.Equal(t, "till-1-token", device.FCMToken)
	assert.True(t, device.IsActive)
	assert.True(t, device.Pushable())
}

func TestDeviceService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	staffID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: staffID, FCMToken: "old", DeviceID: "till-1", Platform: entity.PlatformWeb, IsActive: true}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, staffID).Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).
		Return(&entity.UserDevice{ID: existing.ID, UserID: staffID, FCMToken: "new", DeviceID: "till-1", IsActive: true}, nil)

	device, err := fx.service.RegisterDevice(ctx, staffID, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "till-1", Platform: entity.PlatformWeb})
	require.NoError(t, err)
	assert.Equal(t, "new", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info usecase.DeviceInfo
	}{
		{name: "missing token", info: usecase.DeviceInfo{DeviceID: "till-1", Platform: entity.PlatformIOS}},
		{name: "missing device id", info: usecase.DeviceInfo{FCMToken: "t", Platform: entity.PlatformIOS}},
		{name: "unknown platform", info: usecase.DeviceInfo{FCMToken: "t", DeviceID: "till-1", Platform: "symbian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &tt.info)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_RegisterDevice_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	info := &usecase.DeviceInfo{FCMToken: "t", DeviceID: "till-1", Platform: entity.PlatformIOS}

	t.Run("find devices", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, staffID).Return(nil, errors.New("connection reset"))

		_, err := fx.service.RegisterDevice(ctx, staffID, info)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find devices by user")
	})

	t.Run("create device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, staffID).Return(nil, nil)
		fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

		_, err := fx.service.RegisterDevice(ctx, staffID, info)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrDuplicateDevice)
	})
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	deviceID := uuid.New()

	t.Run("owner updates token", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: staffID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "fresh").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, staffID, deviceID, "fresh"))
	})

	t.Run("device of another user", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.UpdateFCMToken(ctx, staffID, deviceID, "fresh")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, staffID, deviceID, "fresh")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	deviceID := uuid.New()

	t.Run("owner deactivates", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: staffID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, staffID, deviceID))
	})

	t.Run("delete fails", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: staffID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(errors.New("timeout"))

		err := fx.service.DeactivateDevice(ctx, staffID, deviceID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete device")
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	staffID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: staffID, IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, staffID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

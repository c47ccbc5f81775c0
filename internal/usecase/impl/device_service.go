package impl

import (
	"context"
	"strings"
	"time"

	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceUnauthorized is returned when a till or phone is registered to another user
var ErrDeviceUnauthorized = domainerrors.ErrForbidden.WithDetails("device belongs to another user")

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice stores the push token of a till or phone. A device id already known for the
// user keeps its row and only gets the fresh token.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if err := validateDeviceInfo(info); err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != info.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to refresh device token")
		}

		refreshed, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload device")
		}

		return refreshed, nil
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken replaces the push token of one of the user's devices
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices lists the user's active devices
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice soft deletes one of the user's devices so it stops receiving pushes
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.UserID != userID {
		return nil, ErrDeviceUnauthorized
	}

	return device, nil
}

func validateDeviceInfo(info *usecase.DeviceInfo) error {
	if info == nil || strings.TrimSpace(info.FCMToken) == "" || strings.TrimSpace(info.DeviceID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}

	switch info.Platform {
	case entity.PlatformAndroid, entity.PlatformIOS, entity.PlatformWeb:
		return nil
	default:
		return domainerrors.ErrValidationFailed.WithDetails("platform must be android, ios or web")
	}
}

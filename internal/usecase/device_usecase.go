package usecase

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a till or phone reports when it registers for pushes.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"` // Stable per installation, chosen by the client.
	Platform string `json:"platform"`  // android, ios or web.
}

// DeviceUsecase manages the push targets of staff and admins.
type DeviceUsecase interface {
	// RegisterDevice creates the device, or refreshes the token when the device id is already registered.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken replaces the token of a device the user owns.
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices lists the user's active devices.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice stops pushes to a device the user owns.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

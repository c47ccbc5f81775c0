package memory

import (
	"context"
	"slices"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	store *Store
}

// NewDeviceRepository creates a device repository over store.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{store: store}
}

func cloneDevice(device *entity.UserDevice) *entity.UserDevice {
	out := *device

	return &out
}

func (repo *deviceRepository) CreateDevice(_ context.Context, device *entity.UserDevice) error {
	return repo.store.do("devices.CreateDevice", func(st *state) error {
		if _, ok := st.users[device.UserID]; !ok {
			return errConflict("failed to create device: invalid reference")
		}
		for _, existing := range st.devices {
			if existing.ID == device.ID || (existing.UserID == device.UserID && existing.DeviceID == device.DeviceID) {
				return repository.ErrDuplicateDevice
			}
		}

		now := repo.store.now()
		device.CreatedAt = now
		device.UpdatedAt = now
		st.devices[device.ID] = cloneDevice(device)

		return nil
	})
}

func (repo *deviceRepository) FindDeviceByID(_ context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var out *entity.UserDevice
	err := repo.store.do("devices.FindDeviceByID", func(st *state) error {
		device, ok := st.devices[id]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		out = cloneDevice(device)

		return nil
	})

	return out, err
}

func (repo *deviceRepository) FindDevicesByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.collect("devices.FindDevicesByUser", func(device *entity.UserDevice) bool {
		return device.UserID == userID
	})
}

func (repo *deviceRepository) FindActiveDevicesByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.collect("devices.FindActiveDevicesByUser", func(device *entity.UserDevice) bool {
		return device.UserID == userID && device.IsActive
	})
}

func (repo *deviceRepository) collect(op string, keep func(*entity.UserDevice) bool) ([]*entity.UserDevice, error) {
	var devices []*entity.UserDevice
	err := repo.store.read(op, func(st *state) {
		for _, device := range st.devices {
			if keep(device) {
				devices = append(devices, cloneDevice(device))
			}
		}
	})
	slices.SortFunc(devices, func(a, b *entity.UserDevice) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return devices, err
}

func (repo *deviceRepository) UpdateFCMToken(_ context.Context, deviceID uuid.UUID, fcmToken string) error {
	return repo.store.do("devices.UpdateFCMToken", func(st *state) error {
		device, ok := st.devices[deviceID]
		if !ok {
			return repository.ErrDeviceNotFound
		}

		updated := cloneDevice(device)
		updated.FCMToken = fcmToken
		updated.IsActive = true
		updated.UpdatedAt = repo.store.now()
		st.devices[deviceID] = updated

		return nil
	})
}

func (repo *deviceRepository) DeactivateByTokens(_ context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	return repo.store.read("devices.DeactivateByTokens", func(st *state) {
		for id, device := range st.devices {
			if slices.Contains(tokens, device.FCMToken) {
				updated := cloneDevice(device)
				updated.IsActive = false
				updated.UpdatedAt = repo.store.now()
				st.devices[id] = updated
			}
		}
	})
}

func (repo *deviceRepository) DeleteDevice(_ context.Context, id uuid.UUID) error {
	return repo.store.do("devices.DeleteDevice", func(st *state) error {
		if _, ok := st.devices[id]; !ok {
			return repository.ErrDeviceNotFound
		}
		delete(st.devices, id)

		return nil
	})
}

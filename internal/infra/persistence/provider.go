// Package persistence selects the repository implementation named by store.driver.
package persistence

import (
	"log/slog"

	"drinkpos/config"
	"drinkpos/internal/domain/constants"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/infra/persistence/memory"
	"drinkpos/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the repository provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is every repository the usecases consume, bound to one driver.
type Repositories struct {
	fx.Out

	TxManager     repository.TransactionManager
	MenuItems     repository.MenuItemRepository
	Orders        repository.OrderRepository
	DeletedOrders repository.DeletedOrderRepository
	Users         repository.UserRepository
	Devices       repository.DeviceRepository
	Notifications repository.NotificationRepository
	Outbox        repository.OutboxRepository
	Shifts        repository.ShiftRepository
	CheckIns      repository.CheckInRepository
}

// New builds the repositories for the configured driver. Postgres is the default.
func New(params Params) (Repositories, error) {
	driver := constants.StoreDriverPostgres
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	switch driver {
	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:     postgres.NewTransactionManager(db),
			MenuItems:     postgres.NewMenuItemRepository(db),
			Orders:        postgres.NewOrderRepository(db),
			DeletedOrders: postgres.NewDeletedOrderRepository(db),
			Users:         postgres.NewUserRepository(db),
			Devices:       postgres.NewDeviceRepository(db),
			Notifications: postgres.NewNotificationRepository(db),
			Outbox:        postgres.NewOutboxRepository(db),
			Shifts:        postgres.NewShiftRepository(db),
			CheckIns:      postgres.NewCheckInRepository(db),
		}, nil

	case constants.StoreDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")

		return NewMemory(memory.NewStore()), nil

	default:
		return Repositories{}, errors.Errorf("unsupported store driver: %s", driver)
	}
}

// NewMemory binds every repository to store.
func NewMemory(store *memory.Store) Repositories {
	return Repositories{
		TxManager:     memory.NewTransactionManager(store),
		MenuItems:     memory.NewMenuItemRepository(store),
		Orders:        memory.NewOrderRepository(store),
		DeletedOrders: memory.NewDeletedOrderRepository(store),
		Users:         memory.NewUserRepository(store),
		Devices:       memory.NewDeviceRepository(store),
		Notifications: memory.NewNotificationRepository(store),
		Outbox:        memory.NewOutboxRepository(store),
		Shifts:        memory.NewShiftRepository(store),
		CheckIns:      memory.NewCheckInRepository(store),
	}
}

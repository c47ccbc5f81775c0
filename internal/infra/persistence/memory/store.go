// Package memory is an in-process implementation of the persistence layer. It backs development
// runs without PostgreSQL and tests that need a real store with fault injection.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// state is the whole dataset. Every value is owned by the store; callers get copies.
type state struct {
	menu          map[uuid.UUID]*entity.MenuItem
	orders        map[uuid.UUID]*entity.Order
	deletedOrders map[uuid.UUID]*entity.DeletedOrderLog // keyed by original order id
	users         map[uuid.UUID]*entity.User
	devices       map[uuid.UUID]*entity.UserDevice
	notifications map[uuid.UUID]*entity.Notification
	tasks         map[uuid.UUID]*entity.OutboxTask
	shifts        map[uuid.UUID]*entity.Shift
	checkIns      map[uuid.UUID]*entity.CheckInRecord
}

func newState() *state {
	return &state{
		menu:          make(map[uuid.UUID]*entity.MenuItem),
		orders:        make(map[uuid.UUID]*entity.Order),
		deletedOrders: make(map[uuid.UUID]*entity.DeletedOrderLog),
		users:         make(map[uuid.UUID]*entity.User),
		devices:       make(map[uuid.UUID]*entity.UserDevice),
		notifications: make(map[uuid.UUID]*entity.Notification),
		tasks:         make(map[uuid.UUID]*entity.OutboxTask),
		shifts:        make(map[uuid.UUID]*entity.Shift),
		checkIns:      make(map[uuid.UUID]*entity.CheckInRecord),
	}
}

// snapshot copies the maps. Stored values are replaced, never mutated in place, so sharing them is safe.
func (st *state) snapshot() *state {
	return &state{
		menu:          maps.Clone(st.menu),
		orders:        maps.Clone(st.orders),
		deletedOrders: maps.Clone(st.deletedOrders),
		users:         maps.Clone(st.users),
		devices:       maps.Clone(st.devices),
		notifications: maps.Clone(st.notifications),
		tasks:         maps.Clone(st.tasks),
		shifts:        maps.Clone(st.shifts),
		checkIns:      maps.Clone(st.checkIns),
	}
}

// Store holds the dataset behind every memory repository.
type Store struct {
	mu     sync.Mutex
	data   *state
	faults map[string]error

	// txMu serialises transactions. Writes made outside a transaction while one is
	// running are lost if that transaction rolls back.
	txMu sync.Mutex

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data:   newState(),
		faults: make(map[string]error),
		now:    time.Now,
	}
}

// FailOn makes the next call of op return err. op is "<collection>.<Method>", e.g. "orders.Delete".
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.faults[op] = err
}

// do runs fn under the data lock unless a fault is armed for op.
func (s *Store) do(op string, fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.faults[op]; ok {
		delete(s.faults, op)

		return errors.Wrap(err, op)
	}

	return fn(s.data)
}

// read is do for operations that cannot fail on their own.
func (s *Store) read(op string, fn func(st *state)) error {
	return s.do(op, func(st *state) error {
		fn(st)

		return nil
	})
}

// transactionManager implements repository.TransactionManager by snapshotting the dataset.
type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a transaction manager over store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn and restores the pre-transaction dataset when fn returns an error or panics.
func (m *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) (err error) {
	s := m.store

	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	before := s.data.snapshot()
	s.mu.Unlock()

	rollback := func() {
		s.mu.Lock()
		s.data = before
		s.mu.Unlock()
	}

	defer func() {
		if r := recover(); r != nil {
			rollback()
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: s}); err != nil {
		rollback()

		return err
	}

	return nil
}

// repositoryFactory hands out repositories over the same store; isolation comes from txMu.
type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewMenuItemRepository() repository.MenuItemRepository {
	return NewMenuItemRepository(f.store)
}

func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.store)
}

func (f *repositoryFactory) NewDeletedOrderRepository() repository.DeletedOrderRepository {
	return NewDeletedOrderRepository(f.store)
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.store)
}

func (f *repositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.store)
}

func (f *repositoryFactory) NewOutboxRepository() repository.OutboxRepository {
	return NewOutboxRepository(f.store)
}

// page applies limit/offset to an already sorted slice. limit <= 0 returns everything after offset.
func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}

	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

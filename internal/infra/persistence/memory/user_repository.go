package memory

import (
	"cmp"
	"context"
	"slices"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func cloneUser(user *entity.User) *entity.User {
	out := *user

	return &out
}

// taken reports whether value is already some user's username or phone.
func taken(st *state, value string) bool {
	if value == "" {
		return false
	}
	for _, user := range st.users {
		if user.Username == value || user.Phone == value {
			return true
		}
	}

	return false
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	return repo.store.do("users.Create", func(st *state) error {
		if _, exists := st.users[user.ID]; exists || taken(st, user.Username) || (user.Phone != "" && taken(st, user.Phone)) {
			return repository.ErrDuplicateUser
		}

		now := repo.store.now()
		user.CreatedAt = now
		user.UpdatedAt = now
		st.users[user.ID] = cloneUser(user)

		return nil
	})
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first("users.FindByID", func(user *entity.User) bool { return user.ID == id })
}

func (repo *userRepository) FindByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	return repo.first("users.FindByIdentifier", func(user *entity.User) bool {
		return user.Username == identifier || user.Phone == identifier
	})
}

func (repo *userRepository) first(op string, match func(*entity.User) bool) (*entity.User, error) {
	var out *entity.User
	err := repo.store.do(op, func(st *state) error {
		for _, user := range st.users {
			if match(user) {
				out = cloneUser(user)

				return nil
			}
		}

		return repository.ErrUserNotFound
	})

	return out, err
}

func (repo *userRepository) ExistsByUsernameOrPhone(_ context.Context, username, phone string) (bool, error) {
	var exists bool
	err := repo.store.read("users.ExistsByUsernameOrPhone", func(st *state) {
		exists = taken(st, username) || taken(st, phone)
	})

	return exists, err
}

func (repo *userRepository) List(_ context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	var users []*entity.User
	err := repo.store.read("users.List", func(st *state) {
		users = make([]*entity.User, 0, len(st.users))
		for _, user := range st.users {
			if filter.Role != nil && user.Role != *filter.Role {
				continue
			}
			if filter.Status != nil && user.Status != *filter.Status {
				continue
			}
			users = append(users, cloneUser(user))
		}
	})
	slices.SortFunc(users, func(a, b *entity.User) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return users, err
}

func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	return repo.update("users.Update", user.ID, func(stored *entity.User) {
		stored.Name = user.Name
		stored.PasswordHash = user.PasswordHash
		stored.Avatar = user.Avatar
	})
}

func (repo *userRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.UserStatus) error {
	return repo.update("users.UpdateStatus", id, func(stored *entity.User) {
		stored.Status = status
	})
}

func (repo *userRepository) SetOnline(_ context.Context, id uuid.UUID, online bool) error {
	return repo.update("users.SetOnline", id, func(stored *entity.User) {
		stored.IsOnline = online
	})
}

func (repo *userRepository) update(op string, id uuid.UUID, apply func(stored *entity.User)) error {
	return repo.store.do(op, func(st *state) error {
		user, ok := st.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}

		updated := cloneUser(user)
		apply(updated)
		updated.UpdatedAt = repo.store.now()
		st.users[id] = updated

		return nil
	})
}

// Delete removes the user together with their devices and notifications.
func (repo *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.store.do("users.Delete", func(st *state) error {
		if _, ok := st.users[id]; !ok {
			return repository.ErrUserNotFound
		}
		delete(st.users, id)

		for deviceID, device := range st.devices {
			if device.UserID == id {
				delete(st.devices, deviceID)
			}
		}
		for notificationID, notification := range st.notifications {
			if notification.UserID == id {
				delete(st.notifications, notificationID)
			}
		}

		return nil
	})
}

func (repo *userRepository) CountOnline(_ context.Context, role entity.Role) (int64, error) {
	var count int64
	err := repo.store.read("users.CountOnline", func(st *state) {
		for _, user := range st.users {
			if user.Role == role && user.IsOnline && user.Status == entity.UserStatusActive {
				count++
			}
		}
	})

	return count, err
}

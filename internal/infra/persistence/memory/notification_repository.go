package memory

import (
	"context"
	"slices"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
)

type notificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a notification repository over store.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{store: store}
}

func cloneNotification(notification *entity.Notification) *entity.Notification {
	out := *notification

	return &out
}

func (repo *notificationRepository) Create(_ context.Context, notification *entity.Notification) error {
	return repo.store.do("notifications.Create", func(st *state) error {
		if _, ok := st.users[notification.UserID]; !ok {
			return errConflict("failed to create notification: invalid reference")
		}
		st.notifications[notification.ID] = cloneNotification(notification)

		return nil
	})
}

func (repo *notificationRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	var out *entity.Notification
	err := repo.store.do("notifications.FindByID", func(st *state) error {
		notification, ok := st.notifications[id]
		if !ok {
			return repository.ErrNotificationNotFound
		}
		out = cloneNotification(notification)

		return nil
	})

	return out, err
}

func (repo *notificationRepository) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	err := repo.store.read("notifications.ListByUser", func(st *state) {
		notifications = make([]*entity.Notification, 0)
		for _, notification := range st.notifications {
			if notification.UserID == userID {
				notifications = append(notifications, cloneNotification(notification))
			}
		}
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(notifications, func(a, b *entity.Notification) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit <= 0 {
		return notifications, nil
	}

	return page(notifications, limit, offset), nil
}

func (repo *notificationRepository) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.store.read("notifications.CountUnread", func(st *state) {
		for _, notification := range st.notifications {
			if notification.UserID == userID && !notification.IsRead {
				count++
			}
		}
	})

	return count, err
}

// MarkRead leaves missing and already read notifications untouched.
func (repo *notificationRepository) MarkRead(_ context.Context, id uuid.UUID) error {
	return repo.store.read("notifications.MarkRead", func(st *state) {
		if notification, ok := st.notifications[id]; ok && !notification.IsRead {
			st.notifications[id] = repo.read(notification)
		}
	})
}

func (repo *notificationRepository) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.store.read("notifications.MarkAllRead", func(st *state) {
		for id, notification := range st.notifications {
			if notification.UserID == userID && !notification.IsRead {
				st.notifications[id] = repo.read(notification)
				count++
			}
		}
	})

	return count, err
}

func (repo *notificationRepository) read(notification *entity.Notification) *entity.Notification {
	updated := cloneNotification(notification)
	updated.IsRead = true
	updated.UpdatedAt = repo.store.now()

	return updated
}

package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
)

type outboxRepository struct {
	store *Store
}

// NewOutboxRepository creates an outbox repository over store.
func NewOutboxRepository(store *Store) repository.OutboxRepository {
	return &outboxRepository{store: store}
}

func cloneTask(task *entity.OutboxTask) *entity.OutboxTask {
	out := *task
	out.Payload = slices.Clone(task.Payload)

	return &out
}

func (repo *outboxRepository) CreateTasks(_ context.Context, tasks []*entity.OutboxTask) error {
	if len(tasks) == 0 {
		return nil
	}

	return repo.store.do("outbox.CreateTasks", func(st *state) error {
		for _, task := range tasks {
			if _, exists := st.tasks[task.ID]; exists {
				return errConflict("outbox task already exists")
			}
		}
		for _, task := range tasks {
			st.tasks[task.ID] = cloneTask(task)
		}

		return nil
	})
}

// ClaimTask returns the task only while it is pending. Claims are exclusive because
// transactions over the store are serialised.
func (repo *outboxRepository) ClaimTask(_ context.Context, id uuid.UUID) (*entity.OutboxTask, error) {
	var out *entity.OutboxTask
	err := repo.store.do("outbox.ClaimTask", func(st *state) error {
		task, ok := st.tasks[id]
		if !ok {
			return repository.ErrTaskNotFound
		}
		if task.Status != entity.TaskStatusPending {
			return repository.ErrTaskNotClaimable
		}
		out = cloneTask(task)

		return nil
	})

	return out, err
}

func (repo *outboxRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.OutboxTask, error) {
	var out *entity.OutboxTask
	err := repo.store.do("outbox.FindByID", func(st *state) error {
		task, ok := st.tasks[id]
		if !ok {
			return repository.ErrTaskNotFound
		}
		out = cloneTask(task)

		return nil
	})

	return out, err
}

func (repo *outboxRepository) MarkDone(_ context.Context, id uuid.UUID) error {
	return repo.update("outbox.MarkDone", id, func(task *entity.OutboxTask) {
		task.Status = entity.TaskStatusDone
		task.LastError = ""
	})
}

func (repo *outboxRepository) MarkFailed(
	_ context.Context,
	id uuid.UUID,
	attempts int,
	lastErr string,
	status entity.TaskStatus,
	nextAttemptAt time.Time,
) error {
	return repo.update("outbox.MarkFailed", id, func(task *entity.OutboxTask) {
		task.Status = status
		task.Attempts = attempts
		task.LastError = lastErr
		task.NextAttemptAt = nextAttemptAt
	})
}

func (repo *outboxRepository) update(op string, id uuid.UUID, apply func(task *entity.OutboxTask)) error {
	return repo.store.do(op, func(st *state) error {
		task, ok := st.tasks[id]
		if !ok {
			return repository.ErrTaskNotFound
		}

		updated := cloneTask(task)
		apply(updated)
		updated.UpdatedAt = repo.store.now()
		st.tasks[id] = updated

		return nil
	})
}

func (repo *outboxRepository) FindDueTasks(_ context.Context, now time.Time, limit int) ([]*entity.OutboxTask, error) {
	tasks, err := repo.collect("outbox.FindDueTasks", func(task *entity.OutboxTask) bool {
		return task.Status == entity.TaskStatusPending && !task.NextAttemptAt.After(now)
	}, func(a, b *entity.OutboxTask) int {
		return cmp.Or(a.NextAttemptAt.Compare(b.NextAttemptAt), a.CreatedAt.Compare(b.CreatedAt))
	})
	if err != nil {
		return nil, err
	}

	return page(tasks, limit, 0), nil
}

func (repo *outboxRepository) FindTasksByOrder(_ context.Context, orderID uuid.UUID) ([]*entity.OutboxTask, error) {
	return repo.collect("outbox.FindTasksByOrder", func(task *entity.OutboxTask) bool {
		return task.OrderID == orderID
	}, func(a, b *entity.OutboxTask) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func (repo *outboxRepository) collect(op string, keep func(*entity.OutboxTask) bool, order func(a, b *entity.OutboxTask) int) ([]*entity.OutboxTask, error) {
	var tasks []*entity.OutboxTask
	err := repo.store.read(op, func(st *state) {
		tasks = make([]*entity.OutboxTask, 0)
		for _, task := range st.tasks {
			if keep(task) {
				tasks = append(tasks, cloneTask(task))
			}
		}
	})
	slices.SortFunc(tasks, order)

	return tasks, err
}

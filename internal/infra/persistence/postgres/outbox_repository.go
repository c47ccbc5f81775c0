package postgres

import (
	"context"
	"encoding/json"
	"time"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// CreateTasks persists tasks in one batch insert.
func (repo *outboxRepository) CreateTasks(ctx context.Context, tasks []*entity.OutboxTask) error {
	if len(tasks) == 0 {
		return nil
	}

	taskModels := make([]*model.OutboxTaskModel, 0, len(tasks))
	for _, task := range tasks {
		taskModels = append(taskModels, fromOutboxTaskDomain(task))
	}

	if err := repo.db.WithContext(ctx).Create(&taskModels).Error; err != nil {
		return storeError(err, "failed to create outbox tasks")
	}

	return nil
}

// ClaimTask locks a pending task with FOR UPDATE SKIP LOCKED, so two workers never apply the same task.
// Must run inside a transaction for the lock to outlive the statement.
func (repo *outboxRepository) ClaimTask(ctx context.Context, id uuid.UUID) (*entity.OutboxTask, error) {
	var taskModels []*model.OutboxTaskModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("id = ? AND status = ?", id, string(entity.TaskStatusPending)).
		Limit(1).
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to claim outbox task")
	}

	if len(taskModels) == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrTaskNotClaimable
	}

	return toOutboxTaskDomain(taskModels[0]), nil
}

// FindByID retrieves a task without locking it.
func (repo *outboxRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OutboxTask, error) {
	var taskM model.OutboxTaskModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find outbox task")
	}

	return toOutboxTaskDomain(&taskM), nil
}

// MarkDone sets the task status to done.
func (repo *outboxRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxTaskModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(entity.TaskStatusDone),
			"last_error": "",
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return storeError(result.Error, "failed to mark outbox task done")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// MarkFailed records a failed attempt.
func (repo *outboxRepository) MarkFailed(
	ctx context.Context,
	id uuid.UUID,
	attempts int,
	lastErr string,
	status entity.TaskStatus,
	nextAttemptAt time.Time,
) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxTaskModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          string(status),
			"attempts":        attempts,
			"last_error":      lastErr,
			"next_attempt_at": nextAttemptAt,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return storeError(result.Error, "failed to record outbox task failure")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// FindDueTasks retrieves up to limit pending tasks whose next attempt time has passed, oldest first.
func (repo *outboxRepository) FindDueTasks(ctx context.Context, now time.Time, limit int) ([]*entity.OutboxTask, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ? AND next_attempt_at <= ?", string(entity.TaskStatusPending), now).
		Order("next_attempt_at ASC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var taskModels []*model.OutboxTaskModel
	if err := query.Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due outbox tasks")
	}

	return toOutboxTaskDomains(taskModels), nil
}

// FindTasksByOrder retrieves every task of an order.
func (repo *outboxRepository) FindTasksByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OutboxTask, error) {
	var taskModels []*model.OutboxTaskModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find outbox tasks by order")
	}

	return toOutboxTaskDomains(taskModels), nil
}

// --- Mapper Functions ---

func toOutboxTaskDomain(data *model.OutboxTaskModel) *entity.OutboxTask {
	if data == nil {
		return nil
	}

	return &entity.OutboxTask{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Kind:          entity.TaskKind(data.Kind),
		Payload:       json.RawMessage(data.Payload),
		Status:        entity.TaskStatus(data.Status),
		Attempts:      data.Attempts,
		LastError:     data.LastError,
		NextAttemptAt: data.NextAttemptAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toOutboxTaskDomains(models []*model.OutboxTaskModel) []*entity.OutboxTask {
	tasks := make([]*entity.OutboxTask, 0, len(models))
	for _, taskM := range models {
		tasks = append(tasks, toOutboxTaskDomain(taskM))
	}

	return tasks
}

func fromOutboxTaskDomain(data *entity.OutboxTask) *model.OutboxTaskModel {
	if data == nil {
		return nil
	}

	return &model.OutboxTaskModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Kind:          string(data.Kind),
		Payload:       datatypes.JSON(data.Payload),
		Status:        string(data.Status),
		Attempts:      data.Attempts,
		LastError:     data.LastError,
		NextAttemptAt: data.NextAttemptAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

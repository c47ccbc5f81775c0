// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for the task outbox.
var (
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("outbox task not found")
	// ErrTaskNotClaimable is returned when a task is done, dead, or locked by another worker.
	ErrTaskNotClaimable = errors.New("outbox task not claimable")
)

// OutboxRepository defines the persistence operations of follow-up tasks.
type OutboxRepository interface {
	// CreateTasks persists tasks.
	CreateTasks(ctx context.Context, tasks []*entity.OutboxTask) error

	// ClaimTask locks a pending task for the current transaction.
	ClaimTask(ctx context.Context, id uuid.UUID) (*entity.OutboxTask, error)

	// FindByID retrieves a task without locking it.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OutboxTask, error)

	// MarkDone sets the task status to done.
	MarkDone(ctx context.Context, id uuid.UUID) error

	// MarkFailed records a failed attempt: attempts, last error, status (pending or dead) and next attempt time.
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastErr string, status entity.TaskStatus, nextAttemptAt time.Time) error

	// FindDueTasks retrieves up to limit pending tasks whose next attempt time has passed.
	FindDueTasks(ctx context.Context, now time.Time, limit int) ([]*entity.OutboxTask, error)

	// FindTasksByOrder retrieves every task of an order.
	FindTasksByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OutboxTask, error)
}

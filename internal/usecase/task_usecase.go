package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTaskFailed marks a task attempt that failed and was recorded for retry or dead-lettering.
var ErrTaskFailed = errors.New("task attempt failed")

// TaskProcessor applies outbox tasks.
type TaskProcessor interface {
	// Process claims and applies one task. Done, dead or locked tasks are a no-op.
	// A failed attempt is recorded on the task and reported as ErrTaskFailed.
	Process(ctx context.Context, taskID uuid.UUID) error

	// ProcessDue applies up to limit pending tasks whose retry time has passed and returns how many succeeded.
	ProcessDue(ctx context.Context, limit int) (int, error)
}

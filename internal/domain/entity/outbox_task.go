// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TaskKind is the follow-up effect a task applies.
type TaskKind string

const (
	TaskDecrementStock TaskKind = "decrement_stock"
	TaskNotifyUser     TaskKind = "notify_user"
	TaskNotifyRole     TaskKind = "notify_role"
)

// TaskStatus is the delivery state of an outbox task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusDead    TaskStatus = "dead"
)

// OutboxTask is a follow-up effect recorded in the same transaction as its order.
type OutboxTask struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	Kind          TaskKind        `json:"kind"`
	Payload       json.RawMessage `json:"payload"`
	Status        TaskStatus      `json:"status"`
	Attempts      int             `json:"attempts"`
	LastError     string          `json:"last_error,omitempty"`
	NextAttemptAt time.Time       `json:"next_attempt_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DecrementStockPayload is the payload of a decrement_stock task.
type DecrementStockPayload struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Amount  int       `json:"amount"`
}

// NotifyUserPayload is the payload of a notify_user task.
type NotifyUserPayload struct {
	UserID  uuid.UUID        `json:"user_id"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}

// NotifyRolePayload is the payload of a notify_role task.
// A non-nil UserIDs is the recipient list fixed when the task was created,
// including an empty one. A nil UserIDs resolves Role when the task runs.
type NotifyRolePayload struct {
	Role    Role             `json:"role"`
	UserIDs []uuid.UUID      `json:"user_ids"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}

// NewOutboxTask builds a pending task with payload marshalled to JSON.
func NewOutboxTask(orderID uuid.UUID, kind TaskKind, payload any, now time.Time) (*OutboxTask, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal task payload")
	}

	return &OutboxTask{
		ID:            uuid.New(),
		OrderID:       orderID,
		Kind:          kind,
		Payload:       raw,
		Status:        TaskStatusPending,
		NextAttemptAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// DecodePayload unmarshals the task payload into out.
func (t *OutboxTask) DecodePayload(out any) error {
	if err := json.Unmarshal(t.Payload, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s payload", t.Kind)
	}

	return nil
}

// BackoffAfter returns the wait before the next attempt after attempts failures: base·2^(attempts-1), capped.
func BackoffAfter(attempts int, base, maxDelay time.Duration) time.Duration {
	if attempts < 1 {
		return base
	}

	delay := base
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}

	if delay > maxDelay {
		return maxDelay
	}

	return delay
}

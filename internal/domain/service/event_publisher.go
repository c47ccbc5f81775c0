package service

import (
	"context"
)

// TaskEvent announces an outbox task that is ready to be processed by the task worker.
type TaskEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	TaskID    string `json:"task_id"`
	OrderID   string `json:"order_id"`
	Kind      string `json:"kind"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTaskEvent publishes a task event for async processing
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

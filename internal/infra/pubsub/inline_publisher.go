package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const inlineTaskTimeout = 30 * time.Second

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// inlinePublisher processes tasks in background goroutines of the publishing process.
// Failed attempts are recorded on the task by the processor and retried by the sweeper.
type inlinePublisher struct {
	processor usecase.TaskProcessor
	logger    *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewInlinePublisher creates a publisher that hands tasks straight to processor.
func NewInlinePublisher(processor usecase.TaskProcessor, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{
		processor: processor,
		logger:    logger,
	}
}

func (p *inlinePublisher) PublishTaskEvent(ctx context.Context, event *service.TaskEvent) error {
	taskID, err := uuid.Parse(event.TaskID)
	if err != nil {
		return errors.Wrapf(err, "invalid task id %q", event.TaskID)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		// The request that confirmed the order may finish before the task does.
		taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), inlineTaskTimeout)
		defer cancel()

		if err := p.processor.Process(taskCtx, taskID); err != nil {
			p.logger.Warn("[InlinePubSub] Task attempt failed",
				slog.String("task_id", event.TaskID),
				slog.String("kind", event.Kind),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close stops accepting tasks and waits for running ones.
func (p *inlinePublisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}

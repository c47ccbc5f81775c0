package livequery

import (
	"context"
	"log/slog"
	"sync"

	"drinkpos/internal/domain/service"
)

const subscriberBuffer = 256

// localFeed broadcasts changes between components of one process.
type localFeed struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[chan string]struct{}
	closed      bool
}

// NewLocalFeed creates an in-process change feed.
func NewLocalFeed(logger *slog.Logger) service.ChangeFeed {
	return &localFeed{
		logger:      logger,
		subscribers: make(map[chan string]struct{}),
	}
}

func (f *localFeed) Publish(_ context.Context, topic string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for ch := range f.subscribers {
		select {
		case ch <- topic:
		default:
			f.logger.Warn("Change feed subscriber is full, dropping change", slog.String("topic", topic))
		}
	}

	return nil
}

func (f *localFeed) Subscribe(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, subscriberBuffer)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(ch)

		return ch, nil
	}
	f.subscribers[ch] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.unsubscribe(ch)
	}()

	return ch, nil
}

func (f *localFeed) unsubscribe(ch chan string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subscribers[ch]; ok {
		delete(f.subscribers, ch)
		close(ch)
	}
}

func (f *localFeed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	for ch := range f.subscribers {
		delete(f.subscribers, ch)
		close(ch)
	}

	return nil
}

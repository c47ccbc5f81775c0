// Package livequery re-runs registered queries whenever their topic changes and pushes the
// full current result set to the watcher.
package livequery

import (
	"context"
	"log/slog"
	"sync"

	"drinkpos/internal/domain/service"

	"github.com/pkg/errors"
)

// QueryFunc loads the current result set of a watched query.
type QueryFunc func(ctx context.Context) (any, error)

// Snapshot is one result set pushed to a watcher.
type Snapshot struct {
	Topic string
	Data  any
	Err   error
}

// Subscription is a registered watch. Cancel is idempotent.
type Subscription interface {
	// Updates delivers a snapshot immediately and after every change. It is closed after Cancel.
	Updates() <-chan Snapshot
	// Cancel unregisters the watch.
	Cancel()
}

// ErrHubClosed is returned by Watch after Close.
var ErrHubClosed = errors.New("live query hub is closed")

// Hub dispatches change signals from a ChangeFeed to watchers of the changed topic.
type Hub struct {
	feed   service.ChangeFeed
	logger *slog.Logger

	mu       sync.Mutex
	watchers map[string]map[*watcher]struct{}
	closed   bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewHub creates a hub reading feed. Call Start before watching.
func NewHub(feed service.ChangeFeed, logger *slog.Logger) *Hub {
	return &Hub{
		feed:     feed,
		logger:   logger,
		watchers: make(map[string]map[*watcher]struct{}),
	}
}

// Start subscribes to the feed and dispatches changes until Close.
func (h *Hub) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	changes, err := h.feed.Subscribe(runCtx)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to subscribe to change feed")
	}

	h.cancel = cancel
	h.done = make(chan struct{})

	go func() {
		defer close(h.done)

		for topic := range changes {
			h.dispatch(topic)
		}
	}()

	return nil
}

// Watch runs query now and again on each change of topic until ctx is done or the subscription is cancelled.
func (h *Hub) Watch(ctx context.Context, topic string, query QueryFunc) (Subscription, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	w := &watcher{
		hub:     h,
		topic:   topic,
		query:   query,
		trigger: make(chan struct{}, 1),
		updates: make(chan Snapshot, 1),
		cancel:  cancel,
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		cancel()

		return nil, ErrHubClosed
	}
	if h.watchers[topic] == nil {
		h.watchers[topic] = make(map[*watcher]struct{})
	}
	h.watchers[topic][w] = struct{}{}
	h.mu.Unlock()

	w.notify()
	go w.run(watchCtx)

	return w, nil
}

// Watchers returns the number of active watches on topic.
func (h *Hub) Watchers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.watchers[topic])
}

// Close stops dispatching and cancels every watch.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil
	}
	h.closed = true

	var all []*watcher
	for _, set := range h.watchers {
		for w := range set {
			all = append(all, w)
		}
	}
	h.mu.Unlock()

	for _, w := range all {
		w.Cancel()
	}

	if h.cancel != nil {
		h.cancel()
		<-h.done
	}

	return nil
}

func (h *Hub) dispatch(topic string) {
	h.mu.Lock()
	targets := make([]*watcher, 0, len(h.watchers[topic]))
	for w := range h.watchers[topic] {
		targets = append(targets, w)
	}
	h.mu.Unlock()

	for _, w := range targets {
		w.notify()
	}
}

func (h *Hub) remove(w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.watchers[w.topic]; ok {
		delete(set, w)
		if len(set) == 0 {
			delete(h.watchers, w.topic)
		}
	}
}

type watcher struct {
	hub     *Hub
	topic   string
	query   QueryFunc
	trigger chan struct{}
	updates chan Snapshot
	cancel  context.CancelFunc
	once    sync.Once
}

func (w *watcher) Updates() <-chan Snapshot {
	return w.updates
}

func (w *watcher) Cancel() {
	w.once.Do(func() {
		w.hub.remove(w)
		w.cancel()
	})
}

// notify coalesces change signals: a pending re-run already covers this change.
func (w *watcher) notify() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

func (w *watcher) run(ctx context.Context) {
	defer close(w.updates)
	defer w.Cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.trigger:
		}

		data, err := w.query(ctx)
		if err != nil && ctx.Err() != nil {
			return
		}
		if err != nil {
			w.hub.logger.Warn("Live query failed", slog.String("topic", w.topic), slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return
		case w.updates <- Snapshot{Topic: w.topic, Data: data, Err: err}:
		}
	}
}

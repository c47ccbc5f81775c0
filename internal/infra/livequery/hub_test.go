package livequery

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestHub(t *testing.T) (*Hub, *localFeed) {
	t.Helper()

	feed := NewLocalFeed(newDiscardLogger()).(*localFeed)
	hub := NewHub(feed, newDiscardLogger())
	require.NoError(t, hub.Start(context.Background()))
	t.Cleanup(func() {
		_ = hub.Close()
		_ = feed.Close()
	})

	return hub, feed
}

func receive(t *testing.T, sub Subscription) Snapshot {
	t.Helper()

	select {
	case snapshot, ok := <-sub.Updates():
		require.True(t, ok, "updates channel closed")

		return snapshot
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")

		return Snapshot{}
	}
}

func TestHub_WatchPushesInitialAndChangedResults(t *testing.T) {
	hub, feed := createTestHub(t)

	var version atomic.Int32
	sub, err := hub.Watch(context.Background(), "menu", func(context.Context) (any, error) {
		return version.Load(), nil
	})
	require.NoError(t, err)
	defer sub.Cancel()

	first := receive(t, sub)
	assert.Equal(t, "menu", first.Topic)
	assert.Equal(t, int32(0), first.Data)

	version.Store(1)
	require.NoError(t, feed.Publish(context.Background(), "menu"))
	assert.Equal(t, int32(1), receive(t, sub).Data)
}

func TestHub_IgnoresOtherTopics(t *testing.T) {
	hub, feed := createTestHub(t)

	var runs atomic.Int32
	sub, err := hub.Watch(context.Background(), "orders", func(context.Context) (any, error) {
		return runs.Add(1), nil
	})
	require.NoError(t, err)
	defer sub.Cancel()

	receive(t, sub)
	require.NoError(t, feed.Publish(context.Background(), "notifications:someone"))

	select {
	case <-sub.Updates():
		t.Fatal("unexpected snapshot for unrelated topic")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, int32(1), runs.Load())
}

func TestHub_QueryErrorIsDelivered(t *testing.T) {
	hub, _ := createTestHub(t)

	sub, err := hub.Watch(context.Background(), "menu", func(context.Context) (any, error) {
		return nil, errors.New("store unavailable")
	})
	require.NoError(t, err)
	defer sub.Cancel()

	snapshot := receive(t, sub)
	assert.EqualError(t, snapshot.Err, "store unavailable")
}

func TestHub_CancelUnregistersAndIsIdempotent(t *testing.T) {
	hub, _ := createTestHub(t)

	sub, err := hub.Watch(context.Background(), "menu", func(context.Context) (any, error) { return nil, nil })
	require.NoError(t, err)
	receive(t, sub)
	assert.Equal(t, 1, hub.Watchers("menu"))

	sub.Cancel()
	sub.Cancel()

	assert.Eventually(t, func() bool {
		_, open := <-sub.Updates()

		return !open
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, hub.Watchers("menu"))
}

func TestHub_ContextCancellationUnregisters(t *testing.T) {
	hub, _ := createTestHub(t)

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := hub.Watch(ctx, "orders", func(context.Context) (any, error) { return nil, nil })
	require.NoError(t, err)
	receive(t, sub)

	cancel()

	assert.Eventually(t, func() bool { return hub.Watchers("orders") == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_WatchAfterClose(t *testing.T) {
	hub, _ := createTestHub(t)
	require.NoError(t, hub.Close())

	_, err := hub.Watch(context.Background(), "menu", func(context.Context) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrHubClosed)
}

func TestLocalFeed_SubscriberClosedOnContextDone(t *testing.T) {
	feed := NewLocalFeed(newDiscardLogger())
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := feed.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, feed.Publish(context.Background(), "menu"))
	assert.Equal(t, "menu", <-changes)

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-changes

		return !open
	}, time.Second, 10*time.Millisecond)
}

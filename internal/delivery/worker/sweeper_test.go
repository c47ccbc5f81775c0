package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"drinkpos/config"
	mockUsecase "drinkpos/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestSweeper(t *testing.T, outbox *config.OutboxConfig) (*sweeper, *mockUsecase.MockTaskProcessor, *fxtest.Lifecycle) {
	processor := mockUsecase.NewMockTaskProcessor(t)
	lc := fxtest.NewLifecycle(t)

	d := NewSweeper(SweeperParams{
		Lc:        lc,
		Cfg:       &config.Config{Outbox: outbox},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Processor: processor,
	})

	return d.(*sweeper), processor, lc
}

func TestSweeper_Disabled(t *testing.T) {
	s, _, _ := createTestSweeper(t, nil)

	assert.NoError(t, s.Serve(context.Background()))
}

func TestSweeper_SweepsUntilStopped(t *testing.T) {
	s, processor, lc := createTestSweeper(t, &config.OutboxConfig{SweepInterval: 5 * time.Millisecond, BatchSize: 7})
	lc.RequireStart()

	swept := make(chan struct{}, 1)
	processor.EXPECT().ProcessDue(mock.Anything, 7).RunAndReturn(func(context.Context, int) (int, error) {
		select {
		case swept <- struct{}{}:
		default:
		}

		return 0, errors.New("store down")
	})

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweeper never ran")
	}

	lc.RequireStop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_DefaultBatch(t *testing.T) {
	s, _, _ := createTestSweeper(t, &config.OutboxConfig{SweepInterval: time.Minute})

	assert.Equal(t, defaultSweepBatch, s.batch)
}

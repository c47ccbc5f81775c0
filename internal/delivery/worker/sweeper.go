package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"drinkpos/config"
	"drinkpos/internal/delivery"
	"drinkpos/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepBatch = 50

// sweeper retries due outbox tasks on a fixed interval. Tasks whose push message was lost
// or whose last attempt failed are picked up here.
type sweeper struct {
	interval  time.Duration
	batch     int
	processor usecase.TaskProcessor
	logger    *slog.Logger

	stopOnce sync.Once
	stopped  chan struct{}
}

// SweeperParams holds dependencies for the outbox sweeper
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor usecase.TaskProcessor
}

// NewSweeper creates the outbox sweeper delivery. A zero interval disables it.
func NewSweeper(params SweeperParams) delivery.Delivery {
	s := &sweeper{
		batch:     defaultSweepBatch,
		processor: params.Processor,
		logger:    params.Logger,
		stopped:   make(chan struct{}),
	}
	if cfg := params.Cfg.Outbox; cfg != nil {
		s.interval = cfg.SweepInterval
		if cfg.BatchSize > 0 {
			s.batch = cfg.BatchSize
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.stop()

			return nil
		},
	})

	return s
}

// Serve runs sweeps until ctx is done or the application stops.
func (s *sweeper) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Outbox sweeper disabled")

		return nil
	}

	s.logger.Info("Starting outbox sweeper", slog.Duration("interval", s.interval), slog.Int("batch", s.batch))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopped:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	applied, err := s.processor.ProcessDue(ctx, s.batch)
	if err != nil {
		s.logger.Error("Outbox sweep failed", slog.Any("error", err))

		return
	}
	if applied > 0 {
		s.logger.Info("Outbox sweep applied tasks", slog.Int("applied", applied))
	}
}

func (s *sweeper) stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping outbox sweeper")
		close(s.stopped)
	})
}

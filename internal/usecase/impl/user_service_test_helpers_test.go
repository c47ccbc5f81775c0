package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"drinkpos/config"
	"drinkpos/internal/domain/repository"
	mockRepo "drinkpos/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:  4,
			MinPassword: 6,
		},
		Shop: &config.ShopConfig{
			Name:              "Quán Test",
			Timezone:          "Asia/Ho_Chi_Minh",
			LowStockThreshold: 3,
		},
		Outbox: &config.OutboxConfig{
			MaxAttempts:   3,
			BackoffBase:   2 * time.Second,
			BackoffMax:    5 * time.Minute,
			SweepInterval: 15 * time.Second,
			BatchSize:     10,
		},
	}
}

// runInTx makes txManager run the callback against factory, returning whatever the callback returns.
func runInTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/service"
)

// publishChanges signals live query watchers. Failures are logged and never fail the caller:
// the write already happened and watchers catch up on the next change.
func publishChanges(ctx context.Context, feed service.ChangeFeed, logger *slog.Logger, topics ...string) {
	if feed == nil {
		return
	}

	for _, topic := range topics {
		if err := feed.Publish(ctx, topic); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish change",
				slog.String("topic", topic),
				slog.Any("error", err),
			)
		}
	}
}

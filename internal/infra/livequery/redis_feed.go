package livequery

import (
	"context"
	"log/slog"

	"drinkpos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisFeed shares changes between API instances through Redis PUBLISH/SUBSCRIBE.
type redisFeed struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewRedisFeed creates a change feed on channel. The feed owns client.
func NewRedisFeed(client *redis.Client, channel string, logger *slog.Logger) service.ChangeFeed {
	return &redisFeed{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (f *redisFeed) Publish(ctx context.Context, topic string) error {
	if err := f.client.Publish(ctx, f.channel, topic).Err(); err != nil {
		return errors.Wrapf(err, "failed to publish change %s", topic)
	}

	return nil
}

func (f *redisFeed) Subscribe(ctx context.Context) (<-chan string, error) {
	sub := f.client.Subscribe(ctx, f.channel)
	// Wait for the subscription confirmation so no change published after Subscribe returns is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, errors.Wrapf(err, "failed to subscribe to %s", f.channel)
	}

	out := make(chan string, subscriberBuffer)
	messages := sub.Channel()

	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				select {
				case out <- msg.Payload:
				default:
					f.logger.Warn("Change feed subscriber is full, dropping change", slog.String("topic", msg.Payload))
				}
			}
		}
	}()

	return out, nil
}

func (f *redisFeed) Close() error {
	return errors.WithStack(f.client.Close())
}

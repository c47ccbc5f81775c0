package livequery

import (
	"context"
	"log/slog"

	"drinkpos/config"
	"drinkpos/internal/domain/constants"
	"drinkpos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultChannel = "drinkpos:changes"

// FeedParams holds dependencies for the ChangeFeed, injected by Fx
type FeedParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewChangeFeed creates the ChangeFeed selected by liveQuery.provider
func NewChangeFeed(params FeedParams) (service.ChangeFeed, error) {
	cfg := params.Config.LiveQuery
	logger := params.Logger

	var feed service.ChangeFeed

	switch {
	case cfg == nil || cfg.Provider == "" || cfg.Provider == constants.LiveQueryProviderLocal:
		logger.Info("Using in-process change feed")

		feed = NewLocalFeed(logger)

	case cfg.Provider == constants.LiveQueryProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for redis provider")
		}

		channel := cfg.Channel
		if channel == "" {
			channel = defaultChannel
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Using redis change feed", slog.String("addr", cfg.Redis.Addr), slog.String("channel", channel))

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
		})

		feed = NewRedisFeed(client, channel, logger)

	default:
		return nil, errors.Errorf("unknown live query provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing change feed")

			return feed.Close()
		},
	})

	return feed, nil
}

// HubParams holds dependencies for the Hub, injected by Fx
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Feed   service.ChangeFeed
	Logger *slog.Logger
}

// NewLifecycleHub creates a Hub started and stopped with the application
func NewLifecycleHub(params HubParams) *Hub {
	hub := NewHub(params.Feed, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: hub.Start,
		OnStop: func(context.Context) error {
			return hub.Close()
		},
	})

	return hub
}

// Module provides the live query FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChangeFeed, NewLifecycleHub),
)

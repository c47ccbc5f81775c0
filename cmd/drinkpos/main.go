package main

import (
	"context"
	"log/slog"
	"os"

	"drinkpos/config"
	"drinkpos/internal/delivery"
	"drinkpos/internal/delivery/api"
	"drinkpos/internal/delivery/api/middleware"
	"drinkpos/internal/delivery/api/router/handler"
	"drinkpos/internal/delivery/worker"
	"drinkpos/internal/infra/auth"
	"drinkpos/internal/infra/livequery"
	logs "drinkpos/internal/infra/log"
	"drinkpos/internal/infra/notification"
	"drinkpos/internal/infra/persistence"
	"drinkpos/internal/infra/pubsub"
	"drinkpos/internal/infra/qrcode"
	"drinkpos/internal/infra/upload"
	"drinkpos/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewNotificationService,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
		upload.Module,
		livequery.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewTaskProcessor,
			impl.NewAuditService,
			impl.NewRevenueService,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewShiftService,
			impl.NewCheckInService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewReportHandler,
			handler.NewShiftHandler,
			handler.NewCheckInHandler,
			handler.NewUploadHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewLiveHandler,
		),
	)
}

// injectDelivery runs the API and the outbox sweeper; with the inline or local broker
// this process is the only one applying tasks.
func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

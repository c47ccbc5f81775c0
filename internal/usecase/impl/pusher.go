package impl

import (
	"context"
	"log/slog"

	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	defaultPushTitle = "Order Nước"
)

// devicePusher delivers stored notifications to the recipients' devices. Delivery is best-effort:
// the notification record is the source of truth and push errors are only logged.
type devicePusher struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	title           string
	logger          *slog.Logger
}

func newDevicePusher(deviceRepo repository.DeviceRepository, notificationSvc service.NotificationService, title string, logger *slog.Logger) *devicePusher {
	if title == "" {
		title = defaultPushTitle
	}

	return &devicePusher{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		title:           title,
		logger:          logger,
	}
}

// push sends notifications grouped by recipient and returns the number of devices reached.
func (p *devicePusher) push(ctx context.Context, notifications ...*entity.Notification) int {
	if p == nil || p.deviceRepo == nil || p.notificationSvc == nil {
		return 0
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	sent := 0

	for _, notification := range notifications {
		devices, err := p.deviceRepo.FindActiveDevicesByUser(ctx, notification.UserID)
		if err != nil {
			logger.Warn("Failed to fetch devices for push",
				slog.String("userID", notification.UserID.String()),
				slog.Any("error", err),
			)

			continue
		}

		tokens := make([]string, 0, len(devices))
		for _, device := range devices {
			if device.Pushable() {
				tokens = append(tokens, device.FCMToken)
			}
		}
		if len(tokens) == 0 {
			continue
		}

		data := map[string]string{
			"notification_id": notification.ID.String(),
			"type":            string(notification.Type),
		}

		var invalidTokens []string
		for i := 0; i < len(tokens); i += firebaseBatchSize {
			end := min(i+firebaseBatchSize, len(tokens))
			batch := tokens[i:end]

			successCount, _, batchInvalid, err := p.notificationSvc.SendBatchNotification(ctx, batch, p.title, notification.Message, data)
			if err != nil {
				logger.Warn("Failed to send push batch",
					slog.String("notificationID", notification.ID.String()),
					slog.Int("batchSize", len(batch)),
					slog.Any("error", err),
				)

				continue
			}

			sent += successCount
			invalidTokens = append(invalidTokens, batchInvalid...)
		}

		if len(invalidTokens) > 0 {
			if err := p.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
				logger.Warn("Failed to deactivate invalid devices", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
			}
		}
	}

	return sent
}

package service

import (
	"context"
)

// NotificationService delivers pushes to device tokens. Persisted notifications stay the source
// of truth; a failed push never fails the notification itself.
type NotificationService interface {
	// SendBatchNotification pushes one message to many tokens and reports tokens the provider rejected as unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification pushes one message to one token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

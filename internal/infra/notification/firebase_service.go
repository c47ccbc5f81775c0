package notification

import (
	"context"
	"log/slog"

	"drinkpos/config"
	"drinkpos/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit of tokens per multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// Params holds dependencies for the push service, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns FCM delivery when Firebase credentials are configured and
// a logging no-op otherwise, so development setups run without a Firebase project.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase credentials not configured, push notifications disabled")

		return NewDisabledService(params.Logger), nil
	}

	return NewFirebaseService(context.Background(), cfg.ProjectID, cfg.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > maxMulticastTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	return response.SuccessCount, response.FailureCount, collectInvalidTokens(tokens, response.Responses), nil
}

// collectInvalidTokens returns the tokens FCM rejected as malformed or unregistered.
func collectInvalidTokens(tokens []string, responses []*messaging.SendResponse) []string {
	invalid := make([]string, 0)
	for idx, sendResponse := range responses {
		if idx >= len(tokens) || sendResponse == nil || sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalid = append(invalid, tokens[idx])
		}
	}

	return invalid
}

type disabledService struct {
	logger *slog.Logger
}

// NewDisabledService returns a push service that only logs what it would have sent.
func NewDisabledService(logger *slog.Logger) service.NotificationService {
	return &disabledService{logger: logger}
}

func (s *disabledService) SendSingleNotification(_ context.Context, _, title, _ string, _ map[string]string) error {
	s.logger.Debug("Push skipped", slog.String("title", title), slog.Int("tokens", 1))

	return nil
}

func (s *disabledService) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.Debug("Push skipped", slog.String("title", title), slog.Int("tokens", len(tokens)))

	return 0, 0, nil, nil
}

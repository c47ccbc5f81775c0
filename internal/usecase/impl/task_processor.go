package impl

import (
	"context"
	"log/slog"
	"time"

	"drinkpos/config"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTaskMaxAttempts = 5
	defaultTaskBackoffBase = 2 * time.Second
	defaultTaskBackoffMax  = 5 * time.Minute
)

// taskEffects are the side effects of an applied task that run after commit.
type taskEffects struct {
	notifications []*entity.Notification
	menuChanged   bool
}

type taskProcessor struct {
	txManager   repository.TransactionManager
	outboxRepo  repository.OutboxRepository
	pusher      *devicePusher
	feed        service.ChangeFeed
	maxAttempts int
	backoffBase time.Duration
	backoffMax  time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// TaskProcessorParams holds dependencies for TaskProcessor, injected by Fx.
type TaskProcessorParams struct {
	fx.In

	TxManager       repository.TransactionManager
	OutboxRepo      repository.OutboxRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Feed            service.ChangeFeed
	Config          *config.Config
	Logger          *slog.Logger
}

// NewTaskProcessor creates a new outbox task processor
func NewTaskProcessor(params TaskProcessorParams) usecase.TaskProcessor {
	p := &taskProcessor{
		txManager:   params.TxManager,
		outboxRepo:  params.OutboxRepo,
		pusher:      newDevicePusher(params.DeviceRepo, params.NotificationSvc, shopName(params.Config), params.Logger),
		feed:        params.Feed,
		maxAttempts: defaultTaskMaxAttempts,
		backoffBase: defaultTaskBackoffBase,
		backoffMax:  defaultTaskBackoffMax,
		now:         time.Now,
		logger:      params.Logger,
	}

	if params.Config != nil && params.Config.Outbox != nil {
		outbox := params.Config.Outbox
		if outbox.MaxAttempts > 0 {
			p.maxAttempts = outbox.MaxAttempts
		}
		if outbox.BackoffBase > 0 {
			p.backoffBase = outbox.BackoffBase
		}
		if outbox.BackoffMax > 0 {
			p.backoffMax = outbox.BackoffMax
		}
	}

	return p
}

func (p *taskProcessor) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// Process claims and applies one task
func (p *taskProcessor) Process(ctx context.Context, taskID uuid.UUID) error {
	_, err := p.process(ctx, taskID)

	return err
}

// ProcessDue applies pending tasks whose retry time has passed
func (p *taskProcessor) ProcessDue(ctx context.Context, limit int) (int, error) {
	tasks, err := p.outboxRepo.FindDueTasks(ctx, p.now(), limit)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find due tasks")
	}

	applied := 0
	for _, task := range tasks {
		if ctx.Err() != nil {
			return applied, ctx.Err()
		}

		ok, err := p.process(ctx, task.ID)
		if err != nil && !errors.Is(err, usecase.ErrTaskFailed) {
			p.log(ctx).Warn("Sweeper could not process task", slog.String("taskID", task.ID.String()), slog.Any("error", err))

			continue
		}
		if ok {
			applied++
		}
	}

	return applied, nil
}

// process reports whether the task was applied by this call.
// The effect and the done mark share one transaction; a failed attempt is recorded in a second one
// so a partially applied effect never commits.
func (p *taskProcessor) process(ctx context.Context, taskID uuid.UUID) (bool, error) {
	var (
		task    *entity.OutboxTask
		effects taskEffects
		skipped bool
	)

	err := p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		outbox := factory.NewOutboxRepository()

		claimed, err := outbox.ClaimTask(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotClaimable) {
				skipped = true

				return nil
			}
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrTaskNotFound
			}

			return errors.Wrap(err, "failed to claim task")
		}
		task = claimed

		if effects, err = p.apply(ctx, factory, claimed); err != nil {
			return err
		}

		if err := outbox.MarkDone(ctx, claimed.ID); err != nil {
			return errors.Wrap(err, "failed to mark task done")
		}

		return nil
	})

	switch {
	case err == nil && skipped:
		p.log(ctx).Debug("Task not claimable, skipping", slog.String("taskID", taskID.String()))

		return false, nil
	case err == nil:
		p.afterCommit(ctx, task, effects)

		return true, nil
	case task == nil:
		return false, err
	}

	return false, p.recordFailure(ctx, taskID, err)
}

func (p *taskProcessor) apply(ctx context.Context, factory repository.RepositoryFactory, task *entity.OutboxTask) (taskEffects, error) {
	switch task.Kind {
	case entity.TaskDecrementStock:
		var payload entity.DecrementStockPayload
		if err := task.DecodePayload(&payload); err != nil {
			return taskEffects{}, err
		}
		if payload.Amount <= 0 {
			return taskEffects{}, nil
		}

		if err := factory.NewMenuItemRepository().DecrementStock(ctx, payload.OwnerID, payload.Amount); err != nil {
			if errors.Is(err, repository.ErrMenuItemNotFound) {
				p.log(ctx).Warn("Stock owner no longer exists, dropping decrement",
					slog.String("taskID", task.ID.String()),
					slog.String("ownerID", payload.OwnerID.String()),
				)

				return taskEffects{}, nil
			}

			return taskEffects{}, errors.Wrap(err, "failed to decrement stock")
		}

		return taskEffects{menuChanged: true}, nil

	case entity.TaskNotifyUser:
		var payload entity.NotifyUserPayload
		if err := task.DecodePayload(&payload); err != nil {
			return taskEffects{}, err
		}

		if _, err := factory.NewUserRepository().FindByID(ctx, payload.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return taskEffects{}, nil
			}

			return taskEffects{}, errors.Wrap(err, "failed to find recipient")
		}

		created, err := createNotifications(ctx, factory.NewNotificationRepository(), []uuid.UUID{payload.UserID}, payload.Message, payload.Type)

		return taskEffects{notifications: created}, err

	case entity.TaskNotifyRole:
		var payload entity.NotifyRolePayload
		if err := task.DecodePayload(&payload); err != nil {
			return taskEffects{}, err
		}

		recipients, err := roleRecipients(ctx, factory.NewUserRepository(), &payload)
		if err != nil {
			return taskEffects{}, err
		}

		created, err := createNotifications(ctx, factory.NewNotificationRepository(), recipients, payload.Message, payload.Type)

		return taskEffects{notifications: created}, err

	default:
		return taskEffects{}, errors.Errorf("unknown task kind %q", task.Kind)
	}
}

func (p *taskProcessor) recordFailure(ctx context.Context, taskID uuid.UUID, cause error) error {
	var (
		attempts int
		status   entity.TaskStatus
	)

	err := p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		outbox := factory.NewOutboxRepository()

		task, err := outbox.ClaimTask(ctx, taskID)
		if err != nil {
			return errors.Wrap(err, "failed to reclaim task")
		}

		attempts = task.Attempts + 1
		status = entity.TaskStatusPending
		if attempts >= p.maxAttempts {
			status = entity.TaskStatusDead
		}
		next := p.now().Add(entity.BackoffAfter(attempts, p.backoffBase, p.backoffMax))

		return outbox.MarkFailed(ctx, taskID, attempts, cause.Error(), status, next)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to record task failure (%v)", cause)
	}

	logger := p.log(ctx).With(
		slog.String("taskID", taskID.String()),
		slog.Int("attempts", attempts),
		slog.Any("error", cause),
	)
	if status == entity.TaskStatusDead {
		logger.Error("Task moved to dead letter")
	} else {
		logger.Warn("Task attempt failed, will retry")
	}

	return errors.Wrapf(usecase.ErrTaskFailed, "%v", cause)
}

func (p *taskProcessor) afterCommit(ctx context.Context, task *entity.OutboxTask, effects taskEffects) {
	p.log(ctx).Debug("Task applied",
		slog.String("taskID", task.ID.String()),
		slog.String("kind", string(task.Kind)),
		slog.String("orderID", task.OrderID.String()),
	)

	if effects.menuChanged {
		publishChanges(ctx, p.feed, p.logger, service.TopicMenu)
	}
	for _, notification := range effects.notifications {
		publishChanges(ctx, p.feed, p.logger, service.NotificationsTopic(notification.UserID.String()))
	}
	p.pusher.push(ctx, effects.notifications...)
}

// roleRecipients returns the snapshot in payload minus users deleted since,
// or the current active holders of the role for tasks without a snapshot.
func roleRecipients(ctx context.Context, users repository.UserRepository, payload *entity.NotifyRolePayload) ([]uuid.UUID, error) {
	if payload.UserIDs == nil {
		return activeUserIDs(ctx, users, payload.Role)
	}

	recipients := make([]uuid.UUID, 0, len(payload.UserIDs))
	for _, userID := range payload.UserIDs {
		if _, err := users.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to find recipient")
		}
		recipients = append(recipients, userID)
	}

	return recipients, nil
}

func createNotifications(
	ctx context.Context,
	repo repository.NotificationRepository,
	recipients []uuid.UUID,
	message string,
	notificationType entity.NotificationType,
) ([]*entity.Notification, error) {
	created := make([]*entity.Notification, 0, len(recipients))
	for _, userID := range recipients {
		notification, err := newNotification(userID, message, notificationType)
		if err != nil {
			return nil, err
		}
		if err := repo.Create(ctx, notification); err != nil {
			return nil, errors.Wrapf(err, "failed to create notification for %s", userID)
		}
		created = append(created, notification)
	}

	return created, nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

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

type auditService struct {
	txManager   repository.TransactionManager
	deletedRepo repository.DeletedOrderRepository
	feed        service.ChangeFeed
	logger      *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	DeletedRepo repository.DeletedOrderRepository
	Feed        service.ChangeFeed
	Logger      *slog.Logger
}

// NewAuditService creates a new audit service instance
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		txManager:   params.TxManager,
		deletedRepo: params.DeletedRepo,
		feed:        params.Feed,
		logger:      params.Logger,
	}
}

func (s *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DeleteOrder appends the deletion log and removes the order in one transaction
func (s *auditService) DeleteOrder(ctx context.Context, orderID uuid.UUID, actor entity.Actor) (*entity.DeletedOrderLog, error) {
	var deleted *entity.DeletedOrderLog

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		entry := entity.NewDeletedOrderLog(order, actor, time.Now())
		if err := factory.NewDeletedOrderRepository().CreateLog(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to create deletion log")
		}

		if err := orderRepo.Delete(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to delete order")
		}
		deleted = entry

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Order deleted",
		slog.String("orderID", orderID.String()),
		slog.String("deletedBy", deleted.DeletedBy),
		slog.String("deletedByRole", deleted.DeletedByRole.String()),
	)
	publishChanges(ctx, s.feed, s.logger, service.TopicOrders, service.TopicDeletedOrders)

	return deleted, nil
}

// ListDeletedOrders returns deletion records newest first
func (s *auditService) ListDeletedOrders(ctx context.Context, limit, offset int) ([]*entity.DeletedOrderLog, error) {
	logs, err := s.deletedRepo.ListLogs(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deleted orders")
	}

	return logs, nil
}

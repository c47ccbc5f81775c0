package usecase

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditUsecase defines the audited order deletion.
type AuditUsecase interface {
	// DeleteOrder records the deletion log and removes the order atomically.
	DeleteOrder(ctx context.Context, orderID uuid.UUID, actor entity.Actor) (*entity.DeletedOrderLog, error)

	// ListDeletedOrders returns deletion records newest first.
	ListDeletedOrders(ctx context.Context, limit, offset int) ([]*entity.DeletedOrderLog, error)
}

package usecase

import (
	"context"
	"time"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// ConfirmOrderInput is the snapshot persisted as an order.
type ConfirmOrderInput struct {
	StaffID       uuid.UUID
	StaffName     string
	Items         []entity.CartItem
	PaymentMethod entity.PaymentMethod
	CustomerName  string
	CustomerPhone string
	OrderDate     *time.Time
}

// OrderUsecase defines the order persistence and query operations.
type OrderUsecase interface {
	// ConfirmOrder persists the order with its follow-up tasks in one transaction, then dispatches the tasks.
	// Dispatch failures do not fail the call; pending tasks are re-delivered by the sweeper.
	ConfirmOrder(ctx context.Context, input *ConfirmOrderInput) (*entity.Order, error)

	// GetOrder returns one order.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns orders newest first.
	ListOrders(ctx context.Context, limit, offset int) ([]*entity.Order, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations of orders.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves orders by timestamp descending. limit <= 0 returns everything.
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)

	// Delete removes an order. Returns ErrOrderNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeletedOrderRepository defines the append-only persistence of the deletion log.
type DeletedOrderRepository interface {
	// CreateLog appends a deletion record.
	CreateLog(ctx context.Context, log *entity.DeletedOrderLog) error

	// ListLogs retrieves deletion records by deletion time descending.
	ListLogs(ctx context.Context, limit, offset int) ([]*entity.DeletedOrderLog, error)

	// FindLogByOrderID retrieves the deletion record of an order.
	FindLogByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.DeletedOrderLog, error)
}

// ErrDeletedOrderLogNotFound is returned when no deletion record exists for an order.
var ErrDeletedOrderLogNotFound = errors.New("deleted order log not found")

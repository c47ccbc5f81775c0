// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckInFilter narrows the check-in listing. Zero values match everything.
type CheckInFilter struct {
	StaffID *uuid.UUID
	From    time.Time
	To      time.Time // exclusive
}

// CheckInRepository defines the append-only persistence of check-in records.
type CheckInRepository interface {
	// Create appends a record.
	Create(ctx context.Context, record *entity.CheckInRecord) error

	// List retrieves records matching filter, newest first.
	List(ctx context.Context, filter CheckInFilter) ([]*entity.CheckInRecord, error)
}

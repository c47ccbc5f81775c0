package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OutboxTaskModel is the GORM-specific struct for the 'outbox_tasks' table.
// Tasks are written in the same transaction as their order and drained by the task worker.
type OutboxTaskModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Kind          string         `gorm:"type:varchar(30);not null"`
	Payload       datatypes.JSON `gorm:"type:jsonb;not null"`
	Status        string         `gorm:"type:varchar(20);not null;default:'pending';index:idx_outbox_due,priority:1"`
	Attempts      int            `gorm:"not null;default:0"`
	LastError     string         `gorm:"type:text"`
	NextAttemptAt time.Time      `gorm:"not null;index:idx_outbox_due,priority:2"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutboxTaskModel) TableName() string {
	return "outbox_tasks"
}

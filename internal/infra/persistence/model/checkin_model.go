package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckInModel is the GORM-specific struct for the append-only 'check_ins' table.
type CheckInModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Timestamp time.Time `gorm:"not null;index"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null;default:0"`
	Longitude float64   `gorm:"type:decimal(11,8);not null;default:0"`
	Address   string    `gorm:"type:text"`
	Type      string    `gorm:"type:varchar(10);not null"`
	ImageURL  string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CheckInModel) TableName() string {
	return "check_ins"
}

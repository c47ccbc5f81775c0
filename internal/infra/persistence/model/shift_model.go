package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ShiftModel is the GORM-specific struct for the 'shifts' table.
// Date and times are stored as the shop-local strings the admin entered.
type ShiftModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StaffIDs  pq.StringArray `gorm:"type:text[];not null"`
	Date      string         `gorm:"type:varchar(10);not null;index"`
	StartTime string         `gorm:"type:varchar(5);not null"`
	EndTime   string         `gorm:"type:varchar(5);not null"`
	Note      string         `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ShiftModel) TableName() string {
	return "shifts"
}

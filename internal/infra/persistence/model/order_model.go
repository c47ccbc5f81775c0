package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderLine is one cart line stored inside the order's JSONB items column.
type OrderLine struct {
	ItemID   uuid.UUID  `json:"item_id"`
	Name     string     `json:"name"`
	Price    int64      `json:"price"`
	Category string     `json:"category"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	Quantity int        `json:"quantity"`
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Items         datatypes.JSONSlice[OrderLine] `gorm:"type:jsonb;not null"`
	Total         int64                          `gorm:"not null"`
	PaymentMethod string                         `gorm:"type:varchar(20);not null;index"`
	Status        string                         `gorm:"type:varchar(20);not null;default:'completed'"`
	Timestamp     time.Time                      `gorm:"not null;index"`
	OrderDate     *time.Time
	StaffID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Source        string    `gorm:"type:varchar(20);not null;default:'app'"`
	CustomerName  string    `gorm:"type:varchar(150)"`
	CustomerPhone string    `gorm:"type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// DeletedItemLine is the name and quantity kept for each line of a deleted order.
type DeletedItemLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DeletedOrderModel is the GORM-specific struct for the append-only 'deleted_orders' table.
type DeletedOrderModel struct {
	ID              uuid.UUID                            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OriginalOrderID uuid.UUID                            `gorm:"type:uuid;not null;uniqueIndex"`
	Total           int64                                `gorm:"not null"`
	Items           datatypes.JSONSlice[DeletedItemLine] `gorm:"type:jsonb;not null"`
	PaymentMethod   string                               `gorm:"type:varchar(20);not null"`
	OrderTimestamp  time.Time                            `gorm:"not null"`
	StaffID         uuid.UUID                            `gorm:"type:uuid;not null"`
	DeletedAt       time.Time                            `gorm:"not null;index"`
	DeletedBy       string                               `gorm:"type:varchar(150);not null"`
	DeletedByRole   string                               `gorm:"type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeletedOrderModel) TableName() string {
	return "deleted_orders"
}

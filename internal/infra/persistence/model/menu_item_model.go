package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItemModel is the GORM-specific struct for the 'menu_items' table.
// Stock is authoritative only on rows whose ParentID is NULL.
type MenuItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string     `gorm:"type:varchar(150);not null"`
	Price     int64      `gorm:"not null;check:price >= 0"`
	Category  string     `gorm:"type:varchar(20);not null;index"`
	Image     string     `gorm:"type:text"`
	Stock     int        `gorm:"not null;default:0;check:stock >= 0"`
	IsParent  bool       `gorm:"not null;default:false"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Parent *MenuItemModel `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

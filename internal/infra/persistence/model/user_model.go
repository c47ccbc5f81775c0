package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Phone        string    `gorm:"type:varchar(20);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'staff';index"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsOnline     bool      `gorm:"not null;default:false"`
	Avatar       string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Devices       []UserDeviceModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notifications []NotificationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

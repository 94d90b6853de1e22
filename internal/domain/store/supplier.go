package store

import (
	"time"

	"inventory-app/internal/domain/users"
)

type Supplier struct {
	ID      uint       `gorm:"primaryKey"`
	UserID  uint       `gorm:"not null;uniqueIndex:idx_suppliers_user_id"`
	User    users.User `gorm:"constraint:OnDelete:CASCADE"`
	Name    string     `gorm:"not null"`
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}

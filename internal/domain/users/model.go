package users

import (
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"not null;uniqueIndex:idx_users_username"`
	Email        string  `gorm:""`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`

	IsBuyer    bool `gorm:"not null;default:false"`
	IsSupplier bool `gorm:"not null;default:false"`
	IsAdmin    bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

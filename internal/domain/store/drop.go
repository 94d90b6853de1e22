package store

import "time"

// Drop is a delivery window within a season (e.g. "Drop 1 / January").
type Drop struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

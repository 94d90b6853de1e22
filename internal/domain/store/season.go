package store

import "time"

type Season struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

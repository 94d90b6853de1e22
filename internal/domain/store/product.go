package store

import "time"

type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Category    string
	Description string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

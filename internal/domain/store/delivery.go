package store

import "time"

type Delivery struct {
	ID      uint `gorm:"primaryKey"`
	OrderID uint `gorm:"not null;index"`
	Order   Order

	CourierName    string
	TrackingNumber string
	DeliveredAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

package store

import "time"

type Order struct {
	ID uint `gorm:"primaryKey"`

	SupplierID uint `gorm:"not null;index"`
	Supplier   Supplier
	ProductID  uint `gorm:"not null"`
	Product    Product
	BuyerID    uint `gorm:"not null;index"`
	Buyer      Buyer
	SeasonID   uint `gorm:"not null"`
	Season     Season
	DropID     uint `gorm:"not null"`
	Drop       Drop

	Design string
	Color  string
	Status OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

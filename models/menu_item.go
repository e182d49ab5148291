package models

import "time"

type MenuItem struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`
	// Omitting Restaurant field from JSON to avoid recursive nesting
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;references:ID" json:"-"`
	DishName     string      `gorm:"type:varchar(255);not null" json:"dish_name"`
	Description  string      `gorm:"type:text" json:"description"`
	Price        float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	Availability bool        `gorm:"not null" json:"availability"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

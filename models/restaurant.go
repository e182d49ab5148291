package models

import "time"

type Restaurant struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Address   string     `gorm:"type:varchar(255)" json:"address"`
	Phone     string     `gorm:"type:varchar(50)" json:"phone"`
	Approved  bool       `gorm:"not null;default:false" json:"approved"`
	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

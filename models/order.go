package models

import (
	"fmt"
	"time"
)

type Order struct {
	ID          uint       `gorm:"primaryKey" json:"order_id"`
	Reference   string     `gorm:"type:varchar(64);uniqueIndex" json:"reference"`
	Customer    string     `gorm:"type:varchar(255)" json:"customer"`
	TotalAmount float64    `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	UserID      uint       `gorm:"not null" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"user"`
	MenuItems   []MenuItem `gorm:"many2many:order_menu_items" json:"menu_items"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CustomerLabel falls back to the owning user when the free-text
// customer field was left empty at placement time.
func (o *Order) CustomerLabel() string {
	if o.Customer != "" {
		return o.Customer
	}
	return fmt.Sprintf("Customer-%d", o.UserID)
}

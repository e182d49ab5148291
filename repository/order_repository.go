package repository

import (
	"github.com/yeremiapane/food-order-api/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Save(order *models.Order) error {
	return r.DB.Save(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("User").Preload("MenuItems").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("User").Preload("MenuItems").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Order{}).Count(&count).Error
	return count, err
}

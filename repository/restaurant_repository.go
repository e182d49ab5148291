package repository

import (
	"github.com/yeremiapane/food-order-api/models"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// Save persists the restaurant together with any embedded menu items.
func (r *RestaurantRepository) Save(restaurant *models.Restaurant) error {
	return r.DB.Save(restaurant).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.DB.Preload("MenuItems").First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.DB.Preload("MenuItems").Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) DeleteByID(id uint) error {
	return r.DB.Select("MenuItems").Delete(&models.Restaurant{ID: id}).Error
}

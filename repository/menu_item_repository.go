package repository

import (
	"github.com/yeremiapane/food-order-api/models"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) Save(item *models.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuItemRepository) FindByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&items).Error
	return items, err
}

// FindByIDAndRestaurant only matches when the item exists under the given
// restaurant; an item under a different restaurant is a record-not-found.
func (r *MenuItemRepository) FindByIDAndRestaurant(id, restaurantID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindAllByID(ids []uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) Delete(item *models.MenuItem) error {
	return r.DB.Delete(item).Error
}

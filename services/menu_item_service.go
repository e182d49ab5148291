package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/repository"
	"gorm.io/gorm"
)

type MenuItemService struct {
	Repo           *repository.MenuItemRepository
	RestaurantRepo *repository.RestaurantRepository
}

func NewMenuItemService(repo *repository.MenuItemRepository, restRepo *repository.RestaurantRepository) *MenuItemService {
	return &MenuItemService{Repo: repo, RestaurantRepo: restRepo}
}

// CreateMenuItem attaches the item to the restaurant and persists it.
func (s *MenuItemService) CreateMenuItem(item *models.MenuItem, restaurantID uint) (*models.MenuItem, error) {
	if item == nil {
		return nil, &ValidationError{Message: "MenuItem cannot be null"}
	}

	restaurant, err := s.RestaurantRepo.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Restaurant not found with id: %d", restaurantID)}
		}
		return nil, err
	}

	item.RestaurantID = restaurant.ID
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMenuItemsByRestaurant returns every item owned by the restaurant.
// An empty list is a success, a missing restaurant is not.
func (s *MenuItemService) GetMenuItemsByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	if _, err := s.RestaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Restaurant not found with ID: %d", restaurantID)}
		}
		return nil, err
	}
	return s.Repo.FindByRestaurant(restaurantID)
}

// GetMenuItemByIDAndRestaurant is a two-stage lookup: the restaurant must
// exist, then the item must exist under that restaurant specifically. The two
// failure messages stay distinct.
func (s *MenuItemService) GetMenuItemByIDAndRestaurant(itemID, restaurantID uint) (*models.MenuItem, error) {
	if _, err := s.RestaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Restaurant not found with ID: %d", restaurantID)}
		}
		return nil, err
	}

	item, err := s.Repo.FindByIDAndRestaurant(itemID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{
				Message: fmt.Sprintf("MenuItem not found with ID: %d for Restaurant ID: %d", itemID, restaurantID),
			}
		}
		return nil, err
	}
	return item, nil
}

// MenuItemPatch is a partial update; nil fields keep their stored values.
type MenuItemPatch struct {
	DishName     *string  `json:"dish_name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Availability *bool    `json:"availability"`
}

func (s *MenuItemService) UpdateMenuItemByIDAndRestaurant(itemID, restaurantID uint, patch MenuItemPatch) (*models.MenuItem, error) {
	item, err := s.GetMenuItemByIDAndRestaurant(itemID, restaurantID)
	if err != nil {
		return nil, err
	}

	if patch.DishName != nil {
		item.DishName = *patch.DishName
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Availability != nil {
		item.Availability = *patch.Availability
	}

	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItemByIDAndRestaurant deletes after the same two-stage lookup.
// Deleting twice yields NotFound the second time.
func (s *MenuItemService) DeleteMenuItemByIDAndRestaurant(itemID, restaurantID uint) error {
	item, err := s.GetMenuItemByIDAndRestaurant(itemID, restaurantID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(item)
}

// Save is a persistence pass-through with no scoping validation.
func (s *MenuItemService) Save(item *models.MenuItem) (*models.MenuItem, error) {
	if item == nil {
		return nil, &ValidationError{Message: "MenuItem cannot be null"}
	}
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuItemService) FindAll() ([]models.MenuItem, error) {
	return s.Repo.FindAll()
}

package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/repository"
	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// Save persists the restaurant; an embedded menu-item list is created as part
// of the same logical write.
func (s *RestaurantService) Save(restaurant *models.Restaurant) (*models.Restaurant, error) {
	if restaurant == nil {
		return nil, &ValidationError{Message: "Restaurant cannot be null"}
	}
	if err := s.Repo.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	return s.Repo.FindAll()
}

// FindByID reports absence as (nil, nil) rather than an error; callers decide
// how to surface it.
func (s *RestaurantService) FindByID(id uint) (*models.Restaurant, error) {
	restaurant, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return restaurant, nil
}

// DeleteRestaurantByID delegates without an existence pre-check, so deleting
// an unknown id is a silent no-op.
func (s *RestaurantService) DeleteRestaurantByID(id uint) error {
	return s.Repo.DeleteByID(id)
}

// RestaurantPatch is a partial update; nil fields keep their stored values.
type RestaurantPatch struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Approved *bool   `json:"approved"`
}

func (s *RestaurantService) UpdateRestaurant(id uint, patch RestaurantPatch) (*models.Restaurant, error) {
	restaurant, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Restaurant not found with id: %d", id)}
		}
		return nil, err
	}

	if patch.Name != nil {
		restaurant.Name = *patch.Name
	}
	if patch.Address != nil {
		restaurant.Address = *patch.Address
	}
	if patch.Phone != nil {
		restaurant.Phone = *patch.Phone
	}
	if patch.Approved != nil {
		restaurant.Approved = *patch.Approved
	}

	if err := s.Repo.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

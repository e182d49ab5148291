package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/repository"
	"github.com/yeremiapane/food-order-api/utils"
	"gorm.io/gorm"
)

type OrderService struct {
	Repo         *repository.OrderRepository
	UserRepo     *repository.UserRepository
	MenuItemRepo *repository.MenuItemRepository
}

func NewOrderService(repo *repository.OrderRepository, userRepo *repository.UserRepository, menuItemRepo *repository.MenuItemRepository) *OrderService {
	return &OrderService{Repo: repo, UserRepo: userRepo, MenuItemRepo: menuItemRepo}
}

// OrderRequest is the order-placement input.
type OrderRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	MenuItemIDs []uint `json:"menu_item_ids" binding:"required"`
	Customer    string `json:"customer"`
}

// PlaceOrder resolves the user and the menu items, snapshots the total from
// the resolved prices and persists the order. An unknown user and an empty
// resolved item set are both client-input errors, not not-found conditions.
// Ids that do not resolve are dropped; the valid subset is accepted.
func (s *OrderService) PlaceOrder(req OrderRequest) (*models.Order, error) {
	user, err := s.UserRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &BadRequestError{Message: "User not found"}
		}
		return nil, err
	}

	items, err := s.MenuItemRepo.FindAllByID(req.MenuItemIDs)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &BadRequestError{Message: "no valid menu items"}
	}

	var total float64
	for _, item := range items {
		total += item.Price
	}

	order := &models.Order{
		Reference:   "ORD-" + uuid.NewString(),
		Customer:    req.Customer,
		TotalAmount: total,
		UserID:      user.ID,
		User:        *user,
		MenuItems:   items,
	}

	if err := s.Repo.Save(order); err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %s placed for %s by user %d (%d items, total %.2f)",
		order.Reference, order.CustomerLabel(), user.ID, len(items), total)
	return order, nil
}

// Save is a persistence pass-through with no reference validation.
func (s *OrderService) Save(order *models.Order) (*models.Order, error) {
	if order == nil {
		return nil, &ValidationError{Message: "Order cannot be null"}
	}
	if err := s.Repo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) FindAll() ([]models.Order, error) {
	return s.Repo.FindAll()
}

// FindByID is a resource read: a missing order is a not-found condition,
// unlike the missing user at placement time.
func (s *OrderService) FindByID(id uint) (*models.Order, error) {
	order, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Order not found with ID: %d", id)}
		}
		return nil, err
	}
	return order, nil
}

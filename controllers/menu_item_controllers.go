package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/services"
	"github.com/yeremiapane/food-order-api/utils"
)

type MenuItemController struct {
	Service *services.MenuItemService
}

func NewMenuItemController(service *services.MenuItemService) *MenuItemController {
	return &MenuItemController{Service: service}
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

// CreateMenuItem scoped to its owning restaurant
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	type request struct {
		DishName     string  `json:"dish_name" binding:"required"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
		Availability *bool   `json:"availability"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}

	item := &models.MenuItem{
		DishName:    req.DishName,
		Description: req.Description,
		Price:       req.Price,
	}
	// Availability defaults to true unless explicitly provided
	item.Availability = req.Availability == nil || *req.Availability

	created, err := mc.Service.CreateMenuItem(item, restaurantID)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "MenuItem created", created)
}

// GetMenuItemsByRestaurant: an empty list is a success, a missing
// restaurant is a 404.
func (mc *MenuItemController) GetMenuItemsByRestaurant(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	items, err := mc.Service.GetMenuItemsByRestaurant(restaurantID)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID keeps the two-stage lookup's distinct messages.
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Service.GetMenuItemByIDAndRestaurant(itemID, restaurantID)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "MenuItem detail", item)
}

// UpdateMenuItem merges only the fields present in the payload.
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch services.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}

	item, err := mc.Service.UpdateMenuItemByIDAndRestaurant(itemID, restaurantID, patch)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "MenuItem updated", item)
}

// DeleteMenuItem
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Service.DeleteMenuItemByIDAndRestaurant(itemID, restaurantID); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK,
		fmt.Sprintf("MenuItem with ID %d has been successfully deleted.", itemID), nil)
}

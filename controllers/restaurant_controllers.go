package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/services"
	"github.com/yeremiapane/food-order-api/utils"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

// CreateRestaurant accepts an optional embedded menu-item list; the items are
// created as part of the same write.
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	type itemReq struct {
		DishName     string  `json:"dish_name" binding:"required"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
		Availability *bool   `json:"availability"`
	}
	type request struct {
		Name      string    `json:"name" binding:"required"`
		Address   string    `json:"address"`
		Phone     string    `json:"phone"`
		Approved  bool      `json:"approved"`
		MenuItems []itemReq `json:"menu_items"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := &models.Restaurant{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Approved: req.Approved,
	}
	for _, item := range req.MenuItems {
		restaurant.MenuItems = append(restaurant.MenuItems, models.MenuItem{
			DishName:    item.DishName,
			Description: item.Description,
			Price:       item.Price,
			// Availability defaults to true unless explicitly provided
			Availability: item.Availability == nil || *item.Availability,
		})
	}

	saved, err := rc.Service.Save(restaurant)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", saved)
}

// GetAllRestaurants
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.Service.GetAllRestaurants()
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	restaurant, err := rc.Service.FindByID(uint(id))
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// UpdateRestaurant merges only the fields present in the payload.
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var patch services.RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := rc.Service.UpdateRestaurant(uint(id), patch)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// DeleteRestaurant delegates unconditionally; an unknown id is not an error.
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	if err := rc.Service.DeleteRestaurantByID(uint(id)); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

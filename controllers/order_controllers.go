package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-api/services"
	"github.com/yeremiapane/food-order-api/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// PlaceOrder: an unknown user or an empty resolved item set is a 400, not a
// 404 -- missing references at placement time are client-input errors.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req services.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.PlaceOrder(req)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetAllOrders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.FindAll()
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID: a missing order at read time is a 404.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := pathID(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.FindByID(id)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

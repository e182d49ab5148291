package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-api/controllers"
	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/repository"
	"github.com/yeremiapane/food-order-api/services"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(services.NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		repository.NewMenuItemRepository(db),
	))
	router.POST("/orders", orderCtrl.PlaceOrder)
	router.GET("/orders", orderCtrl.GetAllOrders)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	return router
}

func seedOrderData(t *testing.T, db *gorm.DB) (models.User, []models.MenuItem) {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := models.User{Username: "customer1", Password: string(hashed), Role: models.RoleCustomer}
	db.Create(&user)

	restaurant := models.Restaurant{Name: "Trattoria"}
	db.Create(&restaurant)

	items := []models.MenuItem{
		{DishName: "Pizza", Price: 10.99, Availability: true, RestaurantID: restaurant.ID},
		{DishName: "Pasta", Price: 5.99, Availability: true, RestaurantID: restaurant.ID},
	}
	for i := range items {
		db.Create(&items[i])
	}
	return user, items
}

func TestPlaceOrderHTTP(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)
	user, items := seedOrderData(t, db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"user_id":       user.ID,
		"menu_item_ids": []uint{items[0].ID, items[1].ID},
		"customer":      "John Doe",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "John Doe", data["customer"])
	assert.InDelta(t, 16.98, data["total_amount"].(float64), 0.001)
	assert.Len(t, data["menu_items"].([]interface{}), 2)
	orderID := int(data["order_id"].(float64))

	// Read the order back
	w = doJSON(t, router, "GET", fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.InDelta(t, 16.98, data["total_amount"].(float64), 0.001)
}

func TestPlaceOrderUnknownUserIsBadRequest(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)
	_, items := seedOrderData(t, db)

	// Missing user at creation time is a client-input error, not a 404
	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"user_id":       9999,
		"menu_item_ids": []uint{items[0].ID},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp["message"])
}

func TestPlaceOrderNoValidItemsIsBadRequest(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)
	user, _ := seedOrderData(t, db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"user_id":       user.ID,
		"menu_item_ids": []uint{777, 888},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)

	// Missing order at read time is a 404, unlike the placement path
	w := doJSON(t, router, "GET", "/orders/321", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order not found with ID: 321", resp["message"])
}

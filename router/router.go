package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-api/controllers"
	"github.com/yeremiapane/food-order-api/middlewares"
	"github.com/yeremiapane/food-order-api/repository"
	"github.com/yeremiapane/food-order-api/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	userService := services.NewUserService(userRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo)
	menuItemService := services.NewMenuItemService(menuItemRepo, restaurantRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, menuItemRepo)

	userCtrl := controllers.NewUserController(userService)
	restaurantCtrl := controllers.NewRestaurantController(restaurantService)
	menuItemCtrl := controllers.NewMenuItemController(menuItemService)
	orderCtrl := controllers.NewOrderController(orderService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/user")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Browsing restaurants and menus needs no login
	r.GET("/user/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/user/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.GET("/user/restaurants/:restaurant_id/menu-items", menuItemCtrl.GetMenuItemsByRestaurant)
	r.GET("/user/restaurants/:restaurant_id/menu-items/:item_id", menuItemCtrl.GetMenuItemByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	// ORDERS
	auth.POST("/orders", orderCtrl.PlaceOrder)
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// ADMIN
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())

	admin.GET("/users", userCtrl.GetAllUsers)

	admin.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	admin.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)
	admin.DELETE("/restaurants/:restaurant_id", restaurantCtrl.DeleteRestaurant)

	admin.POST("/restaurants/:restaurant_id/menu-items", menuItemCtrl.CreateMenuItem)
	admin.PATCH("/restaurants/:restaurant_id/menu-items/:item_id", menuItemCtrl.UpdateMenuItem)
	admin.DELETE("/restaurants/:restaurant_id/menu-items/:item_id", menuItemCtrl.DeleteMenuItem)

	return r
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/repository"
	"github.com/yeremiapane/food-order-api/services"
)

func TestSaveRestaurantCascadesMenuItems(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRestaurantService(repository.NewRestaurantRepository(db))

	restaurant := &models.Restaurant{
		Name:    "Trattoria",
		Address: "Via Roma 1",
		Phone:   "1234567890",
		MenuItems: []models.MenuItem{
			{DishName: "Pizza", Price: 10.99, Availability: true},
			{DishName: "Pasta", Price: 8.50, Availability: true},
		},
	}

	saved, err := svc.Save(restaurant)
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	// Round-trip: embedded items come back by dish name and price
	fetched, err := svc.FindByID(saved.ID)
	assert.NoError(t, err)
	assert.NotNil(t, fetched)
	assert.Len(t, fetched.MenuItems, 2)

	byName := map[string]float64{}
	for _, item := range fetched.MenuItems {
		byName[item.DishName] = item.Price
		assert.Equal(t, saved.ID, item.RestaurantID)
	}
	assert.Equal(t, 10.99, byName["Pizza"])
	assert.Equal(t, 8.50, byName["Pasta"])
}

func TestFindRestaurantByIDAbsent(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRestaurantService(repository.NewRestaurantRepository(db))

	restaurant, err := svc.FindByID(123)
	assert.NoError(t, err)
	assert.Nil(t, restaurant)
}

func TestUpdateRestaurantPartialMerge(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRestaurantService(repository.NewRestaurantRepository(db))

	restaurant := models.Restaurant{
		Name:    "Old Name",
		Address: "Old Address",
		Phone:   "1234567890",
	}
	db.Create(&restaurant)

	newName := "New Name"
	approved := true
	updated, err := svc.UpdateRestaurant(restaurant.ID, services.RestaurantPatch{
		Name:     &newName,
		Approved: &approved,
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Old Address", updated.Address)
	assert.Equal(t, "1234567890", updated.Phone)
	assert.True(t, updated.Approved)
}

func TestUpdateRestaurantNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRestaurantService(repository.NewRestaurantRepository(db))

	newName := "New Name"
	_, err := svc.UpdateRestaurant(55, services.RestaurantPatch{Name: &newName})

	var notFound *services.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Restaurant not found with id: 55", err.Error())
}

func TestDeleteRestaurantUnknownIDIsSilent(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRestaurantService(repository.NewRestaurantRepository(db))

	// No existence pre-check on this path: unknown id is a no-op
	err := svc.DeleteRestaurantByID(999)
	assert.NoError(t, err)
}

func TestDeleteRestaurantRemovesIt(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRestaurantService(repository.NewRestaurantRepository(db))

	restaurant := models.Restaurant{Name: "Short-lived"}
	db.Create(&restaurant)

	assert.NoError(t, svc.DeleteRestaurantByID(restaurant.ID))

	fetched, err := svc.FindByID(restaurant.ID)
	assert.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestSaveRestaurantNil(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRestaurantService(repository.NewRestaurantRepository(db))

	_, err := svc.Save(nil)
	var validation *services.ValidationError
	assert.ErrorAs(t, err, &validation)
}

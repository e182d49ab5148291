package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-api/controllers"
	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/repository"
	"github.com/yeremiapane/food-order-api/services"
	"github.com/yeremiapane/food-order-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB opens a named in-memory SQLite database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(services.NewUserService(repository.NewUserRepository(db)))
	router.POST("/user/register", userCtrl.Register)
	router.POST("/user/login", userCtrl.Login)
	router.GET("/admin/users", userCtrl.GetAllUsers)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	w := doJSON(t, router, "POST", "/user/register", map[string]string{
		"username": "testuser",
		"password": "password123",
		"role":     "ADMIN",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var registerResponse map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &registerResponse)
	assert.NoError(t, err)
	assert.Equal(t, true, registerResponse["status"])
	data := registerResponse["data"].(map[string]interface{})
	assert.NotNil(t, data["user_id"])
	assert.Equal(t, "ADMIN", data["role"])

	w = doJSON(t, router, "POST", "/user/login", map[string]string{
		"username": "testuser",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResponse map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &loginResponse)
	assert.NoError(t, err)
	assert.Equal(t, true, loginResponse["status"])
	data = loginResponse["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	w := doJSON(t, router, "POST", "/user/register", map[string]string{
		"username": "testuser",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/user/login", map[string]string{
		"username": "testuser",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	w := doJSON(t, router, "POST", "/user/register", map[string]string{
		"username": "incomplete",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllUsers(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	w := doJSON(t, router, "POST", "/user/register", map[string]string{
		"username": "someone",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/admin/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	users := resp["data"].([]interface{})
	assert.Len(t, users, 1)
}

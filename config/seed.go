package config

import (
	"os"

	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from the environment. Skipped
// when the variables are unset or the account already exists.
func SeedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		utils.InfoLogger.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		utils.InfoLogger.Printf("admin already exists: %s", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}

package seeders

import (
	"gorm.io/gorm"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/config"
	"github.com/Bamimore2000/borokini/pkg/auth"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin creates the initial operator account when none exists.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB) error {
	email := config.Get("ADMIN_EMAIL", "admin@borokini.test")

	var n int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "change-me-now"))
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Borokini Admin",
		Email:    email,
		Password: hash,
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

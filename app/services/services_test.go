package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/pkg/database"
)

// setupDB points the global connection at a fresh in-memory database.
// Redis is not connected in tests, so cached reads fall through to SQL.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Collection{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.NewsletterSubscriber{},
		&models.Editorial{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, slug, price string, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Slug:        slug,
		Name:        "Product " + slug,
		Description: "test product",
		Price:       decimal.RequireFromString(price),
		Category:    "rings",
		Material:    "Gold",
		Stock:       stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

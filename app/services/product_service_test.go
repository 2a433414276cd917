package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/services"
)

func TestProductCreate(t *testing.T) {
	db := setupDB(t)

	compare := "500000.00"
	svc := services.NewProductService()
	product, err := svc.Create(services.ProductInput{
		Name:           "Golden Infinity Necklace",
		Slug:           "golden-infinity-necklace",
		Description:    "24k solid gold",
		Price:          "450000.00",
		CompareAtPrice: &compare,
		Images:         []string{"https://cdn.borokini.test/n1.jpg"},
		Category:       "necklaces",
		Material:       "Gold",
		Stock:          10,
		SizeStock:      map[string]int{"16in": 6, "18in": 4},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("450000.00")))

	var loaded models.Product
	require.NoError(t, db.Where("slug = ?", "golden-infinity-necklace").First(&loaded).Error)
	assert.Equal(t, []string{"https://cdn.borokini.test/n1.jpg"}, loaded.Images)
	assert.Equal(t, map[string]int{"16in": 6, "18in": 4}, loaded.SizeStock)
	require.NotNil(t, loaded.CompareAtPrice)
	assert.True(t, loaded.CompareAtPrice.Equal(decimal.RequireFromString("500000.00")))
}

func TestProductUpdateOverwrites(t *testing.T) {
	db := setupDB(t)
	ring := seedProduct(t, db, "r1", "320000.00", 15)

	svc := services.NewProductService()
	updated, err := svc.Update(ring.ID, services.ProductInput{
		Name:        "Classic Band Ring II",
		Slug:        "classic-band-ring-ii",
		Description: "updated",
		Price:       "340000.00",
		Category:    "rings",
		Material:    "Gold",
		Stock:       12,
	})
	require.NoError(t, err)
	assert.Equal(t, "classic-band-ring-ii", updated.Slug)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("340000.00")))
	// Fields absent from the input go back to zero; update is a full overwrite.
	assert.Nil(t, updated.CompareAtPrice)
}

func TestProductBulkDelete(t *testing.T) {
	db := setupDB(t)
	a := seedProduct(t, db, "a", "100.00", 1)
	b := seedProduct(t, db, "b", "100.00", 1)
	c := seedProduct(t, db, "c", "100.00", 1)

	svc := services.NewProductService()
	require.NoError(t, svc.BulkDelete([]string{a.ID, b.ID}))

	var n int64
	require.NoError(t, db.Model(&models.Product{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	var left models.Product
	require.NoError(t, db.First(&left).Error)
	assert.Equal(t, c.ID, left.ID)
}

func TestProductDeleteUnknownIsNotFound(t *testing.T) {
	setupDB(t)

	svc := services.NewProductService()
	err := svc.Delete("e2b2ee01-0000-0000-0000-000000000000")
	assert.Error(t, err)
}

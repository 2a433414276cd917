package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/services"
)

func TestProductBySlug(t *testing.T) {
	db := setupDB(t)
	ring := seedProduct(t, db, "classic-band-ring", "320000.00", 15)

	svc := services.NewCatalogService()
	found, err := svc.Product("classic-band-ring")
	require.NoError(t, err)
	assert.Equal(t, ring.ID, found.ID)
}

func TestProductFallsBackToID(t *testing.T) {
	db := setupDB(t)
	ring := seedProduct(t, db, "classic-band-ring", "320000.00", 15)

	svc := services.NewCatalogService()
	found, err := svc.Product(ring.ID)
	require.NoError(t, err)
	assert.Equal(t, "classic-band-ring", found.Slug)
}

func TestProductNonUUIDTokenSkipsIDLookup(t *testing.T) {
	setupDB(t)

	svc := services.NewCatalogService()
	_, err := svc.Product("no-such-slug")
	assert.Error(t, err, "a token without UUID shape must not hit the id lookup")
}

func TestProductsByCategory(t *testing.T) {
	db := setupDB(t)
	seedProduct(t, db, "r1", "100.00", 5)
	seedProduct(t, db, "r2", "100.00", 5)
	necklace := seedProduct(t, db, "n1", "100.00", 5)
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", necklace.ID).
		Update("category", "necklaces").Error)

	svc := services.NewCatalogService()

	all, err := svc.Products("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	necklaces, err := svc.Products("necklaces")
	require.NoError(t, err)
	require.Len(t, necklaces, 1)
	assert.Equal(t, "n1", necklaces[0].Slug)
}

func TestEditorialDraftsAreInvisible(t *testing.T) {
	db := setupDB(t)

	published := models.Editorial{
		Title: "The Art of Layering Gold", Slug: "layering-gold",
		Content: "…", Status: models.EditorialPublished,
	}
	draft := models.Editorial{
		Title: "Upcoming Collection", Slug: "upcoming-collection",
		Content: "…", Status: models.EditorialDraft,
	}
	require.NoError(t, db.Create(&published).Error)
	require.NoError(t, db.Create(&draft).Error)

	svc := services.NewCatalogService()

	list, err := svc.Editorials()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "layering-gold", list[0].Slug)

	_, err = svc.Editorial("upcoming-collection")
	assert.Error(t, err, "a draft slug behaves like a missing one")

	got, err := svc.Editorial("layering-gold")
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)
}

func TestProductsByCollection(t *testing.T) {
	db := setupDB(t)

	collection := models.Collection{Name: "Heritage", Slug: "heritage"}
	require.NoError(t, db.Create(&collection).Error)

	ring := seedProduct(t, db, "r1", "100.00", 5)
	seedProduct(t, db, "r2", "100.00", 5)
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", ring.ID).
		Update("collection_id", collection.ID).Error)

	svc := services.NewCatalogService()
	got, products, err := svc.ProductsByCollection("heritage")
	require.NoError(t, err)
	assert.Equal(t, collection.ID, got.ID)
	require.Len(t, products, 1)
	assert.Equal(t, "r1", products[0].Slug)
}

package repositories

import (
	"time"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/pkg/orm"
)

// CollectionRepository handles database operations for Collection.
type CollectionRepository struct{}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{}
}

// All returns every collection, newest first, served through the cache.
func (r *CollectionRepository) All() ([]models.Collection, error) {
	var collections []models.Collection
	err := orm.DB().Model(&models.Collection{}).
		Order("created_at DESC").
		Cache("borokini:collections:all", 10*time.Minute, &collections)
	return collections, err
}

// FindBySlug looks up a collection by its slug.
func (r *CollectionRepository) FindBySlug(slug string) (models.Collection, error) {
	var collection models.Collection
	err := orm.DB().Model(&models.Collection{}).Where("slug = ?", slug).First(&collection)
	return collection, err
}

// FindByID looks up a collection by primary key.
func (r *CollectionRepository) FindByID(id string) (models.Collection, error) {
	var collection models.Collection
	err := orm.DB().Model(&models.Collection{}).Where("id = ?", id).First(&collection)
	return collection, err
}

// Create persists a new collection.
func (r *CollectionRepository) Create(collection *models.Collection) error {
	return orm.DB().Create(collection)
}

// Update persists changes to an existing collection.
func (r *CollectionRepository) Update(collection *models.Collection) error {
	return orm.DB().Save(collection)
}

// Delete removes a collection by primary key. Products keep their rows and
// simply lose the association.
func (r *CollectionRepository) Delete(id string) error {
	if err := orm.DB().Model(&models.Product{}).
		Where("collection_id = ?", id).
		Updates(map[string]interface{}{"collection_id": nil}); err != nil {
		return err
	}
	return orm.DB().Where("id = ?", id).Delete(&models.Collection{})
}

package repositories

import (
	"time"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/pkg/orm"
)

// EditorialRepository handles database operations for Editorial.
type EditorialRepository struct{}

func NewEditorialRepository() *EditorialRepository {
	return &EditorialRepository{}
}

// Published returns published stories, newest first, served through the cache.
func (r *EditorialRepository) Published() ([]models.Editorial, error) {
	var editorials []models.Editorial
	err := orm.DB().Model(&models.Editorial{}).
		Where("status = ?", models.EditorialPublished).
		Order("created_at DESC").
		Cache("borokini:editorials:published", 10*time.Minute, &editorials)
	return editorials, err
}

// All returns every story regardless of status, newest first.
func (r *EditorialRepository) All() ([]models.Editorial, error) {
	var editorials []models.Editorial
	err := orm.DB().Model(&models.Editorial{}).
		Order("created_at DESC").
		Get(&editorials)
	return editorials, err
}

// PublishedBySlug looks up a published story by slug. Drafts are invisible
// here, so a draft slug behaves like a missing one.
func (r *EditorialRepository) PublishedBySlug(slug string) (models.Editorial, error) {
	var editorial models.Editorial
	err := orm.DB().Model(&models.Editorial{}).
		Where("slug = ? AND status = ?", slug, models.EditorialPublished).
		First(&editorial)
	return editorial, err
}

// FindByID looks up a story by primary key.
func (r *EditorialRepository) FindByID(id string) (models.Editorial, error) {
	var editorial models.Editorial
	err := orm.DB().Model(&models.Editorial{}).Where("id = ?", id).First(&editorial)
	return editorial, err
}

// Create persists a new story.
func (r *EditorialRepository) Create(editorial *models.Editorial) error {
	return orm.DB().Create(editorial)
}

// Update persists changes to an existing story.
func (r *EditorialRepository) Update(editorial *models.Editorial) error {
	return orm.DB().Save(editorial)
}

// Delete removes a story by primary key.
func (r *EditorialRepository) Delete(id string) error {
	return orm.DB().Where("id = ?", id).Delete(&models.Editorial{})
}

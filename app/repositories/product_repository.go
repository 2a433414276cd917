package repositories

import (
	"time"

	"github.com/google/uuid"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/pkg/orm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns every product, newest first, served through the cache.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Order("created_at DESC").
		Cache("borokini:products:all", 10*time.Minute, &products)
	return products, err
}

// ByCategory returns products in a category, newest first.
func (r *ProductRepository) ByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("category = ?", category).
		Order("created_at DESC").
		Cache("borokini:products:category:"+category, 10*time.Minute, &products)
	return products, err
}

// ByCollection returns products assigned to a collection, newest first.
func (r *ProductRepository) ByCollection(collectionID string) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("collection_id = ?", collectionID).
		Order("created_at DESC").
		Get(&products)
	return products, err
}

// BySlugOrID resolves a product by slug first. When no slug matches and the
// token looks like a primary key, it falls back to an id lookup, so products
// created before slugs were backfilled stay reachable.
func (r *ProductRepository) BySlugOrID(token string) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("slug = ?", token).First(&product)
	if err == nil {
		return product, nil
	}
	if _, parseErr := uuid.Parse(token); parseErr != nil {
		return product, err
	}
	err = orm.DB().Model(&models.Product{}).Where("id = ?", token).First(&product)
	return product, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id string) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// FindByIDs loads the given products in one query.
func (r *ProductRepository) FindByIDs(ids []string) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := orm.DB().Model(&models.Product{}).Where("id IN ?", ids).Get(&products)
	return products, err
}

// LowStock returns up to five products at or below the restock threshold,
// lowest stock first.
func (r *ProductRepository) LowStock() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("stock <= ?", 5).
		Order("stock ASC").
		Limit(5).
		Get(&products)
	return products, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return orm.DB().Save(product)
}

// Delete removes a product by primary key.
func (r *ProductRepository) Delete(id string) error {
	return orm.DB().Where("id = ?", id).Delete(&models.Product{})
}

// BulkDelete removes every product in ids with a single statement.
func (r *ProductRepository) BulkDelete(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return orm.DB().Where("id IN ?", ids).Delete(&models.Product{})
}

// Count returns the total number of products.
func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Product{}).Count(&n)
	return n, err
}

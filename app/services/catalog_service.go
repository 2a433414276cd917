package services

import (
	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/repositories"
)

// CatalogService serves the public, read-only storefront queries.
type CatalogService struct {
	products    *repositories.ProductRepository
	collections *repositories.CollectionRepository
	editorials  *repositories.EditorialRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		products:    repositories.NewProductRepository(),
		collections: repositories.NewCollectionRepository(),
		editorials:  repositories.NewEditorialRepository(),
	}
}

// Products lists the catalog, optionally narrowed to one category.
func (s *CatalogService) Products(category string) ([]models.Product, error) {
	if category != "" {
		return s.products.ByCategory(category)
	}
	return s.products.All()
}

// ProductsByCollection resolves a collection slug and returns its products.
func (s *CatalogService) ProductsByCollection(slug string) (models.Collection, []models.Product, error) {
	collection, err := s.collections.FindBySlug(slug)
	if err != nil {
		return collection, nil, err
	}
	products, err := s.products.ByCollection(collection.ID)
	return collection, products, err
}

// Product fetches a single product by slug, falling back to id for tokens
// with primary-key shape.
func (s *CatalogService) Product(token string) (models.Product, error) {
	return s.products.BySlugOrID(token)
}

// Collections lists every collection.
func (s *CatalogService) Collections() ([]models.Collection, error) {
	return s.collections.All()
}

// Editorials lists published stories, newest first.
func (s *CatalogService) Editorials() ([]models.Editorial, error) {
	return s.editorials.Published()
}

// Editorial fetches one published story by slug. Drafts stay invisible.
func (s *CatalogService) Editorial(slug string) (models.Editorial, error) {
	return s.editorials.PublishedBySlug(slug)
}

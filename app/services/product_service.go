package services

import (
	"github.com/shopspring/decimal"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/repositories"
)

// ProductInput is the typed payload for product create and update.
// Money comes in as strings so the decimal rule can check the shape before
// parsing.
type ProductInput struct {
	Name           string         `json:"name"           validate:"required,max=255"`
	Slug           string         `json:"slug"           validate:"required,slug,max=255"`
	SKU            *string        `json:"sku"            validate:"nullable,max=100"`
	Description    string         `json:"description"    validate:"required"`
	Price          string         `json:"price"          validate:"required,decimal"`
	CompareAtPrice *string        `json:"compareAtPrice" validate:"nullable,decimal"`
	Images         []string       `json:"images"         validate:"required"`
	Category       string         `json:"category"       validate:"required,max=100"`
	CollectionID   *string        `json:"collectionId"   validate:"nullable,uuid"`
	Material       string         `json:"material"       validate:"required,max=255"`
	Stock          int            `json:"stock"          validate:"gte=0"`
	SizeStock      map[string]int `json:"sizeStock"`
}

// ProductService handles admin product mutations.
type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{products: repositories.NewProductRepository()}
}

func (s *ProductService) apply(product *models.Product, in ProductInput) error {
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return err
	}

	product.Name = in.Name
	product.Slug = in.Slug
	product.SKU = in.SKU
	product.Description = in.Description
	product.Price = price
	product.CompareAtPrice = nil
	if in.CompareAtPrice != nil {
		compare, err := decimal.NewFromString(*in.CompareAtPrice)
		if err != nil {
			return err
		}
		product.CompareAtPrice = &compare
	}
	product.Images = in.Images
	product.Category = in.Category
	product.CollectionID = in.CollectionID
	product.Material = in.Material
	product.Stock = in.Stock
	product.SizeStock = in.SizeStock
	return nil
}

// Create makes a new product and drops the catalog cache keys.
func (s *ProductService) Create(in ProductInput) (models.Product, error) {
	var product models.Product
	if err := s.apply(&product, in); err != nil {
		return product, err
	}
	if err := s.products.Create(&product); err != nil {
		return product, err
	}
	invalidateProducts()
	return product, nil
}

// Update overwrites an existing product and drops the catalog cache keys.
func (s *ProductService) Update(id string, in ProductInput) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return product, err
	}
	if err := s.apply(&product, in); err != nil {
		return product, err
	}
	if err := s.products.Update(&product); err != nil {
		return product, err
	}
	invalidateProducts()
	return product, nil
}

// Delete removes a product. Hard delete, no undo; order items that point at
// it keep their rows.
func (s *ProductService) Delete(id string) error {
	if _, err := s.products.FindByID(id); err != nil {
		return err
	}
	if err := s.products.Delete(id); err != nil {
		return err
	}
	invalidateProducts()
	return nil
}

// BulkDelete removes a set of products in one statement.
func (s *ProductService) BulkDelete(ids []string) error {
	if err := s.products.BulkDelete(ids); err != nil {
		return err
	}
	invalidateProducts()
	return nil
}

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/response"
)

// CatalogController serves the public storefront reads.
type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{catalog: services.NewCatalogService()}
}

// Products lists the catalog. ?category= narrows to one category,
// ?collection= narrows to a collection slug.
func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	if slug := r.URL.Query().Get("collection"); slug != "" {
		collection, products, err := c.catalog.ProductsByCollection(slug)
		if err != nil {
			fail(w, r, err)
			return
		}
		response.Success(w, map[string]interface{}{
			"collection": collection,
			"products":   products,
		})
		return
	}

	products, err := c.catalog.Products(r.URL.Query().Get("category"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// Product fetches one product by slug or id.
func (c *CatalogController) Product(w http.ResponseWriter, r *http.Request) {
	product, err := c.catalog.Product(chi.URLParam(r, "slug"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Collections lists every collection.
func (c *CatalogController) Collections(w http.ResponseWriter, r *http.Request) {
	collections, err := c.catalog.Collections()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, collections)
}

// Editorials lists published stories.
func (c *CatalogController) Editorials(w http.ResponseWriter, r *http.Request) {
	editorials, err := c.catalog.Editorials()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, editorials)
}

// Editorial fetches one published story by slug. A draft slug is a 404.
func (c *CatalogController) Editorial(w http.ResponseWriter, r *http.Request) {
	editorial, err := c.catalog.Editorial(chi.URLParam(r, "slug"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, editorial)
}

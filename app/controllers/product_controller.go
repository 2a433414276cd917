package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/bind"
	"github.com/Bamimore2000/borokini/pkg/response"
	"github.com/Bamimore2000/borokini/pkg/validate"
)

type bulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required"`
}

// ProductController handles admin product mutations.
type ProductController struct {
	products *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{products: services.NewProductService()}
}

// Store creates a product.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.Create(in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, product)
}

// Update overwrites a product.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Destroy hard-deletes a product.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.products.Delete(chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, nil)
}

// BulkDestroy hard-deletes a set of products in one statement.
func (c *ProductController) BulkDestroy(w http.ResponseWriter, r *http.Request) {
	var in bulkDeleteInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	if err := c.products.BulkDelete(in.IDs); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"deleted": len(in.IDs)})
}

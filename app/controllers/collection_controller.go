package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/bind"
	"github.com/Bamimore2000/borokini/pkg/response"
	"github.com/Bamimore2000/borokini/pkg/validate"
)

// CollectionController handles admin collection mutations.
type CollectionController struct {
	collections *services.CollectionService
}

func NewCollectionController() *CollectionController {
	return &CollectionController{collections: services.NewCollectionService()}
}

// Store creates a collection.
func (c *CollectionController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CollectionInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	collection, err := c.collections.Create(in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, collection)
}

// Update overwrites a collection.
func (c *CollectionController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.CollectionInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	collection, err := c.collections.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, collection)
}

// Destroy deletes a collection; its products lose the association.
func (c *CollectionController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.collections.Delete(chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, nil)
}

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/bind"
	"github.com/Bamimore2000/borokini/pkg/response"
	"github.com/Bamimore2000/borokini/pkg/validate"
)

// EditorialController handles admin story mutations.
type EditorialController struct {
	editorials *services.EditorialService
}

func NewEditorialController() *EditorialController {
	return &EditorialController{editorials: services.NewEditorialService()}
}

// Index lists every story including drafts.
func (c *EditorialController) Index(w http.ResponseWriter, r *http.Request) {
	editorials, err := c.editorials.All()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, editorials)
}

// Store creates a story.
func (c *EditorialController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.EditorialInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	editorial, err := c.editorials.Create(in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, editorial)
}

// Update overwrites a story; status changes publish or unpublish it.
func (c *EditorialController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.EditorialInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	editorial, err := c.editorials.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, editorial)
}

// Destroy deletes a story.
func (c *EditorialController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.editorials.Delete(chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, nil)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/response"
)

// 8MB covers the largest product shots the studio exports.
const maxUploadBytes = 8 << 20

// UploadController accepts product image uploads.
type UploadController struct {
	uploads *services.UploadService
}

func NewUploadController() *UploadController {
	return &UploadController{uploads: services.NewUploadService()}
}

// Store reads the multipart "file" part, saves it to the configured disk and
// returns the public URL for use in Product.Images.
func (c *UploadController) Store(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.ValidationError(w, map[string]string{"file": "The file field is required."})
		return
	}
	defer file.Close()

	url, err := c.uploads.SaveImage(header.Filename, file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImage) {
			response.ValidationError(w, map[string]string{"file": "The file must be an image."})
			return
		}
		fail(w, r, err)
		return
	}

	response.Created(w, map[string]string{"url": url})
}

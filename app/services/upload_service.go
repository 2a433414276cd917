package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bamimore2000/borokini/pkg/storage"
)

// ErrUnsupportedImage is returned for files outside the allowed image types.
var ErrUnsupportedImage = errors.New("unsupported image type")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".avif": true,
}

// UploadService stores product images on the configured disk.
type UploadService struct{}

func NewUploadService() *UploadService {
	return &UploadService{}
}

// SaveImage streams an uploaded file to storage under a fresh name and
// returns its public URL. The original filename only contributes the
// extension.
func (s *UploadService) SaveImage(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, ext)
	}

	path := fmt.Sprintf("products/%s/%s%s",
		time.Now().UTC().Format("2006/01"), uuid.NewString(), ext)
	if err := storage.PutStream(path, r); err != nil {
		return "", err
	}
	return storage.URL(path), nil
}

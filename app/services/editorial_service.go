package services

import (
	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/repositories"
)

// EditorialInput is the typed payload for story create and update.
type EditorialInput struct {
	Title         string  `json:"title"         validate:"required,max=255"`
	Slug          string  `json:"slug"          validate:"required,slug,max=255"`
	Content       string  `json:"content"       validate:"required"`
	FeaturedImage *string `json:"featuredImage" validate:"nullable,url"`
	Status        string  `json:"status"        validate:"required,in=draft,published"`
}

// EditorialService handles admin story mutations.
type EditorialService struct {
	editorials *repositories.EditorialRepository
}

func NewEditorialService() *EditorialService {
	return &EditorialService{editorials: repositories.NewEditorialRepository()}
}

// All lists every story for the admin, drafts included.
func (s *EditorialService) All() ([]models.Editorial, error) {
	return s.editorials.All()
}

// Create makes a new story.
func (s *EditorialService) Create(in EditorialInput) (models.Editorial, error) {
	editorial := models.Editorial{
		Title:         in.Title,
		Slug:          in.Slug,
		Content:       in.Content,
		FeaturedImage: in.FeaturedImage,
		Status:        models.EditorialStatus(in.Status),
	}
	if err := s.editorials.Create(&editorial); err != nil {
		return editorial, err
	}
	invalidateEditorials()
	return editorial, nil
}

// Update overwrites an existing story. Publishing and unpublishing happen
// here through the status field.
func (s *EditorialService) Update(id string, in EditorialInput) (models.Editorial, error) {
	editorial, err := s.editorials.FindByID(id)
	if err != nil {
		return editorial, err
	}
	editorial.Title = in.Title
	editorial.Slug = in.Slug
	editorial.Content = in.Content
	editorial.FeaturedImage = in.FeaturedImage
	editorial.Status = models.EditorialStatus(in.Status)
	if err := s.editorials.Update(&editorial); err != nil {
		return editorial, err
	}
	invalidateEditorials()
	return editorial, nil
}

// Delete removes a story.
func (s *EditorialService) Delete(id string) error {
	if _, err := s.editorials.FindByID(id); err != nil {
		return err
	}
	if err := s.editorials.Delete(id); err != nil {
		return err
	}
	invalidateEditorials()
	return nil
}

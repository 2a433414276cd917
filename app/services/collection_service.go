package services

import (
	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/repositories"
)

// CollectionInput is the typed payload for collection create and update.
type CollectionInput struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Slug        string  `json:"slug"        validate:"required,slug,max=255"`
	Description *string `json:"description"`
}

// CollectionService handles admin collection mutations.
type CollectionService struct {
	collections *repositories.CollectionRepository
}

func NewCollectionService() *CollectionService {
	return &CollectionService{collections: repositories.NewCollectionRepository()}
}

// Create makes a new collection.
func (s *CollectionService) Create(in CollectionInput) (models.Collection, error) {
	collection := models.Collection{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
	}
	if err := s.collections.Create(&collection); err != nil {
		return collection, err
	}
	invalidateCollections()
	return collection, nil
}

// Update overwrites an existing collection.
func (s *CollectionService) Update(id string, in CollectionInput) (models.Collection, error) {
	collection, err := s.collections.FindByID(id)
	if err != nil {
		return collection, err
	}
	collection.Name = in.Name
	collection.Slug = in.Slug
	collection.Description = in.Description
	if err := s.collections.Update(&collection); err != nil {
		return collection, err
	}
	invalidateCollections()
	return collection, nil
}

// Delete removes a collection. Its products stay and lose the association.
func (s *CollectionService) Delete(id string) error {
	if _, err := s.collections.FindByID(id); err != nil {
		return err
	}
	if err := s.collections.Delete(id); err != nil {
		return err
	}
	invalidateCollections()
	return nil
}

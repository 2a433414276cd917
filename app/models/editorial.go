package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EditorialStatus gates public visibility of a story.
type EditorialStatus string

const (
	EditorialDraft     EditorialStatus = "draft"
	EditorialPublished EditorialStatus = "published"
)

func (s EditorialStatus) Valid() bool {
	return s == EditorialDraft || s == EditorialPublished
}

// Editorial is a long-form story. Drafts are only visible in the back
// office; public slug resolution treats them as not found.
type Editorial struct {
	ID            string          `gorm:"primaryKey;size:36"             json:"id"`
	Title         string          `gorm:"size:255;not null"              json:"title"`
	Slug          string          `gorm:"uniqueIndex;size:255;not null"  json:"slug"`
	Content       string          `gorm:"type:text;not null"             json:"content"`
	FeaturedImage *string         `gorm:"size:1024"                      json:"featured_image,omitempty"`
	Status        EditorialStatus `gorm:"size:50;not null;default:draft" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (e *Editorial) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = EditorialDraft
	}
	return nil
}

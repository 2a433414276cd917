package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection is a curated grouping of products. Products point at a
// collection through a nullable foreign key with no cascade rule, so
// deleting a collection strands its products rather than deleting them.
type Collection struct {
	ID          string    `gorm:"primaryKey;size:36"            json:"id"`
	Name        string    `gorm:"size:255;not null"             json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Description *string   `gorm:"type:text"                     json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterSubscriber holds one row per email; the unique index is the
// final guarantee behind the "already subscribed" soft result.
type NewsletterSubscriber struct {
	ID         string     `gorm:"primaryKey;size:36"            json:"id"`
	Email      string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (n *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

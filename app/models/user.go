package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a back-office operator. Storefront visitors never get a row here;
// checkout is guest-first and identity otherwise lives with the external
// provider.
type User struct {
	ID        string    `gorm:"primaryKey;size:36"            json:"id"`
	Name      string    `gorm:"size:255;not null"             json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null"             json:"-"` // bcrypt hash, never serialised
	Role      string    `gorm:"size:50;default:user"          json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/pkg/orm"
)

// NewsletterRepository handles database operations for NewsletterSubscriber.
type NewsletterRepository struct{}

func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{}
}

// Exists reports whether an email is already subscribed.
func (r *NewsletterRepository) Exists(email string) (bool, error) {
	var sub models.NewsletterSubscriber
	err := orm.DB().Model(&models.NewsletterSubscriber{}).
		Where("email = ?", email).
		First(&sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create persists a new subscriber.
func (r *NewsletterRepository) Create(sub *models.NewsletterSubscriber) error {
	return orm.DB().Create(sub)
}

// All lists every subscriber, newest first.
func (r *NewsletterRepository) All() ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	err := orm.DB().Model(&models.NewsletterSubscriber{}).
		Order("created_at desc").
		Get(&subs)
	return subs, err
}

// Count returns the total number of subscribers.
func (r *NewsletterRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.NewsletterSubscriber{}).Count(&n)
	return n, err
}

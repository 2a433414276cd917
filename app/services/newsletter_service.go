package services

import (
	"errors"
	"strings"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/repositories"
	"github.com/Bamimore2000/borokini/pkg/metrics"
)

// ErrAlreadySubscribed marks a duplicate signup. Callers treat it as a soft
// outcome, not a failure.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// NewsletterService handles signup and the admin subscriber list.
type NewsletterService struct {
	subscribers *repositories.NewsletterRepository
}

func NewNewsletterService() *NewsletterService {
	return &NewsletterService{subscribers: repositories.NewNewsletterRepository()}
}

// Subscribe records a new subscriber. A duplicate email returns
// ErrAlreadySubscribed; the unique index backs up the pre-check.
func (s *NewsletterService) Subscribe(email string) (models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.subscribers.Exists(email)
	if err != nil {
		return models.NewsletterSubscriber{}, err
	}
	if exists {
		return models.NewsletterSubscriber{}, ErrAlreadySubscribed
	}

	sub := models.NewsletterSubscriber{Email: email}
	if err := s.subscribers.Create(&sub); err != nil {
		return sub, err
	}

	metrics.NewsletterSignups.Inc()
	return sub, nil
}

// Subscribers lists every subscriber, newest first.
func (s *NewsletterService) Subscribers() ([]models.NewsletterSubscriber, error) {
	return s.subscribers.All()
}

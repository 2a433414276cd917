package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/services"
)

func TestSubscribe(t *testing.T) {
	db := setupDB(t)

	svc := services.NewNewsletterService()
	sub, err := svc.Subscribe("client@borokini.test")
	require.NoError(t, err)
	assert.Equal(t, "client@borokini.test", sub.Email)

	var n int64
	require.NoError(t, db.Model(&models.NewsletterSubscriber{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSubscribeDuplicateIsSoft(t *testing.T) {
	db := setupDB(t)

	svc := services.NewNewsletterService()
	_, err := svc.Subscribe("client@borokini.test")
	require.NoError(t, err)

	_, err = svc.Subscribe("client@borokini.test")
	assert.ErrorIs(t, err, services.ErrAlreadySubscribed)

	var n int64
	require.NoError(t, db.Model(&models.NewsletterSubscriber{}).Count(&n).Error)
	assert.Equal(t, int64(1), n, "one row per email")
}

func TestSubscribersListNewestFirst(t *testing.T) {
	db := setupDB(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, email := range []string{"first@borokini.test", "second@borokini.test", "third@borokini.test"} {
		sub := models.NewsletterSubscriber{Email: email, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, db.Create(&sub).Error)
	}

	svc := services.NewNewsletterService()
	subs, err := svc.Subscribers()
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "third@borokini.test", subs[0].Email)
	assert.Equal(t, "first@borokini.test", subs[2].Email)
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	setupDB(t)

	svc := services.NewNewsletterService()
	sub, err := svc.Subscribe("  Client@Borokini.Test ")
	require.NoError(t, err)
	assert.Equal(t, "client@borokini.test", sub.Email)

	_, err = svc.Subscribe("client@borokini.test")
	assert.ErrorIs(t, err, services.ErrAlreadySubscribed)
}

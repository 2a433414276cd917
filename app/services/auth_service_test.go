package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/auth"
)

func TestLogin(t *testing.T) {
	db := setupDB(t)

	hash, err := auth.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	operator := models.User{
		Name: "Borokini Admin", Email: "admin@borokini.test",
		Password: hash, Role: "admin",
	}
	require.NoError(t, db.Create(&operator).Error)

	svc := services.NewAuthService()

	token, user, err := svc.Login(services.LoginInput{
		Email: "admin@borokini.test", Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, operator.ID, user.ID)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, operator.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupDB(t)

	hash, err := auth.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Name: "Borokini Admin", Email: "admin@borokini.test",
		Password: hash, Role: "admin",
	}).Error)

	svc := services.NewAuthService()
	_, _, err = svc.Login(services.LoginInput{
		Email: "admin@borokini.test", Password: "wrong",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(services.LoginInput{
		Email: "nobody@borokini.test", Password: "correct-horse-battery",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials,
		"unknown email and wrong password are indistinguishable")
}

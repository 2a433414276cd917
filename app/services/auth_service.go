package services

import (
	"errors"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/repositories"
	"github.com/Bamimore2000/borokini/pkg/auth"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so the
// response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginInput is the typed payload for admin login.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthService issues admin tokens.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Login checks the password and returns a signed token plus the user.
func (s *AuthService) Login(in LoginInput) (string, models.User, error) {
	user, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, in.Password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

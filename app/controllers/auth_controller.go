package controllers

import (
	"errors"
	"net/http"

	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/bind"
	"github.com/Bamimore2000/borokini/pkg/response"
	"github.com/Bamimore2000/borokini/pkg/validate"
)

// AuthController issues admin tokens.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{auth: services.NewAuthService()}
}

// Login exchanges email and password for a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	token, user, err := c.auth.Login(in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w)
			return
		}
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

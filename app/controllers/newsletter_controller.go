package controllers

import (
	"errors"
	"net/http"

	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/bind"
	"github.com/Bamimore2000/borokini/pkg/response"
	"github.com/Bamimore2000/borokini/pkg/validate"
)

type subscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterController handles signup and the admin subscriber list.
type NewsletterController struct {
	newsletter *services.NewsletterService
}

func NewNewsletterController() *NewsletterController {
	return &NewsletterController{newsletter: services.NewNewsletterService()}
}

// Subscribe records a newsletter signup. A duplicate email is a 200 with
// subscribed:false, not an error.
func (c *NewsletterController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in subscribeInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	sub, err := c.newsletter.Subscribe(in.Email)
	if err != nil {
		if errors.Is(err, services.ErrAlreadySubscribed) {
			response.SuccessWithMessage(w, "You're already subscribed.",
				map[string]interface{}{"subscribed": false})
			return
		}
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"subscribed": true,
		"subscriber": sub,
	})
}

// Index lists all subscribers for the admin, newest first.
func (c *NewsletterController) Index(w http.ResponseWriter, r *http.Request) {
	subs, err := c.newsletter.Subscribers()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, subs)
}

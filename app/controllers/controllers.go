// Package controllers maps HTTP requests onto services and writes the
// standard response envelope.
package controllers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/Bamimore2000/borokini/pkg/logger"
	"github.com/Bamimore2000/borokini/pkg/response"
)

// fail maps a service error onto the envelope: record-not-found becomes 404,
// anything else is logged with the request id and returned as a generic 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	logger.WithCtx(r.Context()).Error("request failed", "error", err)
	response.Error(w, http.StatusInternalServerError, "Something went wrong")
}

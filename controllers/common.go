package controllers

import (
	"errors"
	"net/http"

	"github.com/yeremiapane/food-order-api/services"
)

// statusForError maps a service failure to its HTTP outcome class.
func statusForError(err error) int {
	var notFound *services.NotFoundError
	var badRequest *services.BadRequestError
	var validation *services.ValidationError
	var invalidOp *services.InvalidOperationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &invalidOp):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

package model

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrMessageNotFound = errors.New("contact message not found")

func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

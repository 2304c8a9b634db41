package model

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	// ErrBadReference covers a categoryId that points nowhere.
	ErrBadReference = errors.New("referenced category does not exist")
)

func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadReference):
		return http.StatusBadRequest
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

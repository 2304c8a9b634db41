package model

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrEmailTaken       = errors.New("employee email already exists")
)

func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrEmployeeNotFound), errors.Is(err, ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

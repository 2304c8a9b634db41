package model

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrCategoryNotFound    = errors.New("project category not found")
	ErrSlugTaken           = errors.New("project category slug already exists")
	ErrCategoryHasProjects = errors.New("category has existing projects")
)

func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSlugTaken), errors.Is(err, ErrCategoryHasProjects):
		return http.StatusConflict
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

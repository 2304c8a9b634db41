package model

import (
	"errors"
	"net/http"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSlugTaken           = errors.New("category with this slug already exists")
	ErrCategoryHasArticles = errors.New("cannot delete category with existing articles")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSlugTaken), errors.Is(err, ErrCategoryHasArticles):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

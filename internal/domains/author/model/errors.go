package model

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound    = errors.New("author not found")
	ErrEmailTaken        = errors.New("author with this email already exists")
	ErrAuthorHasArticles = errors.New("cannot delete author with existing articles")
)

// ToHTTPStatus maps domain errors to response status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrAuthorHasArticles):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

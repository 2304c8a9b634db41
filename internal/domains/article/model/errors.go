package model

import (
	"errors"
	"net/http"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugTaken       = errors.New("article with this slug already exists")
	ErrBadReference    = errors.New("author or category does not exist")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, ErrBadReference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/repository"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

// ServiceInterface exposes the author operations consumed by handlers
// and by the article service.
type ServiceInterface interface {
	GetAll(ctx context.Context, loc i18n.Locale) ([]*model.AuthorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.AuthorResponse, error)
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) GetAll(ctx context.Context, loc i18n.Locale) ([]*model.AuthorResponse, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.LocalizeAuthors(authors, loc), nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.AuthorResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.Localize(loc), nil
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	req.ApplyToEntity(&updated)

	return s.repo.Update(ctx, &updated)
}

// Delete refuses to remove an author who still owns articles. The check
// is surfaced as a structured conflict, and the repository additionally
// maps FK violations to the same error in case an article lands between
// the count and the delete.
func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.ArticleCount(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check article count: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: author has %d articles", model.ErrAuthorHasArticles, count)
	}
	return s.repo.Delete(ctx, id)
}

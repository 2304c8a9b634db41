package service

import (
	"context"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/repository"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/utils"
)

// ServiceInterface exposes the blog article operations.
type ServiceInterface interface {
	List(ctx context.Context, filter model.ListFilter, loc i18n.Locale) ([]*model.ArticleResponse, int64, error)
	GetBySlug(ctx context.Context, slug string, loc i18n.Locale) (*model.ArticleResponse, error)
	Create(ctx context.Context, req *model.CreateArticleRequest) (*model.Article, error)
	Update(ctx context.Context, slugOrID string, req *model.UpdateArticleRequest) (*model.Article, error)
	Delete(ctx context.Context, slugOrID string) error
}

type articleService struct {
	repo repository.RepositoryInterface
}

func NewArticleService(repo repository.RepositoryInterface) ServiceInterface {
	return &articleService{repo: repo}
}

// List returns a locale-resolved page of articles plus the unfiltered
// total. Status defaults to published; the literal "all" disables the
// status filter. Callers are expected to cap limit before it gets here.
func (s *articleService) List(ctx context.Context, filter model.ListFilter, loc i18n.Locale) ([]*model.ArticleResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Status == "" {
		filter.Status = model.StatusPublished
	}

	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*model.ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, localizeWithRelations(&articles[i], loc))
	}
	return out, total, nil
}

// GetBySlug is a read-with-mutation: every successful fetch increments
// the article's view counter by exactly one. A not-found slug counts
// nothing.
func (s *articleService) GetBySlug(ctx context.Context, slug string, loc i18n.Locale) (*model.ArticleResponse, error) {
	a, err := s.repo.GetBySlugAndIncrementViews(ctx, slug)
	if err != nil {
		return nil, err
	}
	return localizeWithRelations(a, loc), nil
}

// Create validates the payload, generates a unique slug from the title
// when none is supplied, and returns the raw bilingual record with
// relations populated. Creation output is not locale-transformed.
func (s *articleService) Create(ctx context.Context, req *model.CreateArticleRequest) (*model.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := ""
	if req.Slug != nil && *req.Slug != "" {
		slug = *req.Slug
	} else {
		var err error
		slug, err = utils.UniqueSlug(ctx, utils.Slugify(req.Title), s.repo.ExistsBySlug)
		if err != nil {
			return nil, err
		}
	}

	return s.repo.Create(ctx, req.ToEntity(slug))
}

// Update resolves the target by slug first, then id, applies the patch
// and persists. A changed title does not touch the slug.
func (s *articleService) Update(ctx context.Context, slugOrID string, req *model.UpdateArticleRequest) (*model.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetBySlugOrID(ctx, slugOrID)
	if err != nil {
		return nil, err
	}

	updated := *current
	req.ApplyToEntity(&updated)

	return s.repo.Update(ctx, &updated)
}

// Delete resolves by slug-then-id and hard-deletes. No tombstones.
func (s *articleService) Delete(ctx context.Context, slugOrID string) error {
	a, err := s.repo.GetBySlugOrID(ctx, slugOrID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, a.ID)
}

// localizeWithRelations applies the two-step composition: the article's
// own fields first, then each relation localized independently and
// spliced back on.
func localizeWithRelations(a *model.Article, loc i18n.Locale) *model.ArticleResponse {
	resp := a.Localize(loc)
	resp.Author = a.Author.Localize(loc)
	resp.Category = a.Category.Localize(loc)
	return resp
}

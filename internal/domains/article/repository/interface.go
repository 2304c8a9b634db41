package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/model"
)

// RepositoryInterface is the article data-access contract.
type RepositoryInterface interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Article, int64, error)

	// GetBySlugAndIncrementViews atomically bumps the view counter and
	// returns the article with author/category populated. A miss does
	// not increment anything.
	GetBySlugAndIncrementViews(ctx context.Context, slug string) (*model.Article, error)

	// GetBySlugOrID tries a slug lookup first, then an id lookup when
	// the key parses as a UUID. Slug wins if both could match.
	GetBySlugOrID(ctx context.Context, key string) (*model.Article, error)

	Create(ctx context.Context, a *model.Article) (*model.Article, error)
	Update(ctx context.Context, a *model.Article) (*model.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	CountStaleDrafts(ctx context.Context, before time.Time) (int, error)
}

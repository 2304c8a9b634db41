package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/model"
)

// RepositoryInterface is the author data-access contract.
type RepositoryInterface interface {
	GetAll(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	Update(ctx context.Context, a *model.Author) (*model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ArticleCount(ctx context.Context, authorID uuid.UUID) (int, error)
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/model"
)

// RepositoryInterface is the project category data-access contract.
type RepositoryInterface interface {
	GetAll(ctx context.Context) ([]model.ProjectCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectCategory, error)
	Create(ctx context.Context, c *model.ProjectCategory) (*model.ProjectCategory, error)
	Update(ctx context.Context, c *model.ProjectCategory) (*model.ProjectCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

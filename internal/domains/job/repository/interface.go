package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/model"
)

// RepositoryInterface is the job posting data-access contract.
type RepositoryInterface interface {
	List(ctx context.Context, status string) ([]model.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, j *model.Job) (*model.Job, error)
	Update(ctx context.Context, j *model.Job) (*model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

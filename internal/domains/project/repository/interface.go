package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/project/model"
)

// RepositoryInterface is the project data-access contract. The owned
// collections are replaced through explicit primitives so the
// replace-vs-merge decision lives at a single call site.
type RepositoryInterface interface {
	// List returns the whole filtered set newest-first with the category
	// joined. No pagination on this path.
	List(ctx context.Context, categorySlug string) ([]model.Project, error)

	// GetByID loads the project with category, technologies, results,
	// testimonial and content blocks (ordered by sort order ascending).
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)

	// Create inserts the project and any supplied children in one
	// transaction.
	Create(ctx context.Context, p *model.Project) (*model.Project, error)

	// Update persists scalar fields only. Children go through the
	// replace/upsert primitives below.
	Update(ctx context.Context, p *model.Project) error

	// ReplaceTechnologies deletes every technology row for the project
	// and recreates from the supplied list. An empty list leaves zero
	// rows.
	ReplaceTechnologies(ctx context.Context, projectID uuid.UUID, techs []model.Technology) error
	ReplaceResults(ctx context.Context, projectID uuid.UUID, results []model.Result) error
	ReplaceContentBlocks(ctx context.Context, projectID uuid.UUID, blocks []model.ContentBlock) error

	// UpsertTestimonial updates the project's testimonial in place when
	// one exists, otherwise creates it. At most one row per project.
	UpsertTestimonial(ctx context.Context, projectID uuid.UUID, t model.Testimonial) error

	// Delete hard-deletes the project. Owned children go with it via
	// cascading deletes.
	Delete(ctx context.Context, id uuid.UUID) error
}

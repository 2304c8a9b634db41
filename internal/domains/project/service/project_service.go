package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/project/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/project/repository"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

// ServiceInterface exposes the portfolio project operations.
type ServiceInterface interface {
	List(ctx context.Context, categorySlug string, loc i18n.Locale) ([]*model.ProjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.ProjectResponse, error)
	Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo repository.RepositoryInterface
}

func NewProjectService(repo repository.RepositoryInterface) ServiceInterface {
	return &projectService{repo: repo}
}

// List returns the whole filtered set, newest first. This path carries
// no pagination and no owned children, just the joined category.
func (s *projectService) List(ctx context.Context, categorySlug string, loc i18n.Locale) ([]*model.ProjectResponse, error) {
	projects, err := s.repo.List(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	out := make([]*model.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, localizeWithRelations(&projects[i], loc))
	}
	return out, nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.ProjectResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return localizeWithRelations(p, loc), nil
}

// Create persists the project together with any supplied children and
// returns the raw bilingual record, relations populated.
func (s *projectService) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToEntity())
}

// Update applies scalar changes, then the collection semantics: a
// present technologies/results/contentBlocks field replaces the whole
// collection (empty list ends up with zero rows), an absent field
// leaves it untouched. A supplied non-empty testimonial is upserted in
// place.
func (s *projectService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	req.ApplyToEntity(&updated)
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	if req.Technologies != nil {
		techs := make([]model.Technology, 0, len(*req.Technologies))
		for i := range *req.Technologies {
			techs = append(techs, (*req.Technologies)[i].ToEntity())
		}
		if err := s.repo.ReplaceTechnologies(ctx, id, techs); err != nil {
			return nil, err
		}
	}
	if req.Results != nil {
		results := make([]model.Result, 0, len(*req.Results))
		for i := range *req.Results {
			results = append(results, (*req.Results)[i].ToEntity())
		}
		if err := s.repo.ReplaceResults(ctx, id, results); err != nil {
			return nil, err
		}
	}
	if req.ContentBlocks != nil {
		blocks := make([]model.ContentBlock, 0, len(*req.ContentBlocks))
		for i := range *req.ContentBlocks {
			blocks = append(blocks, (*req.ContentBlocks)[i].ToEntity())
		}
		if err := s.repo.ReplaceContentBlocks(ctx, id, blocks); err != nil {
			return nil, err
		}
	}
	if req.Testimonial != nil && !req.Testimonial.IsEmpty() {
		if err := s.repo.UpsertTestimonial(ctx, id, req.Testimonial.ToEntity()); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// localizeWithRelations resolves the project's own fields, then each
// relation independently, and splices them back on.
func localizeWithRelations(p *model.Project, loc i18n.Locale) *model.ProjectResponse {
	resp := p.Localize(loc)
	resp.Category = p.Category.Localize(loc)

	if p.Technologies != nil {
		resp.Technologies = make([]*model.TechnologyResponse, 0, len(p.Technologies))
		for i := range p.Technologies {
			resp.Technologies = append(resp.Technologies, p.Technologies[i].Localize(loc))
		}
	}
	if p.Results != nil {
		resp.Results = make([]*model.ResultResponse, 0, len(p.Results))
		for i := range p.Results {
			resp.Results = append(resp.Results, p.Results[i].Localize(loc))
		}
	}
	resp.Testimonial = p.Testimonial.Localize(loc)
	if p.ContentBlocks != nil {
		resp.ContentBlocks = make([]*model.ContentBlockResponse, 0, len(p.ContentBlocks))
		for i := range p.ContentBlocks {
			resp.ContentBlocks = append(resp.ContentBlocks, p.ContentBlocks[i].Localize(loc))
		}
	}
	return resp
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/repository"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/utils"
)

type ServiceInterface interface {
	GetAll(ctx context.Context, loc i18n.Locale) ([]*model.ProjectCategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.ProjectCategoryResponse, error)
	Create(ctx context.Context, req *model.CreateProjectCategoryRequest) (*model.ProjectCategory, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateProjectCategoryRequest) (*model.ProjectCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectCategoryService struct {
	repo repository.RepositoryInterface
}

func NewProjectCategoryService(repo repository.RepositoryInterface) ServiceInterface {
	return &projectCategoryService{repo: repo}
}

func (s *projectCategoryService) GetAll(ctx context.Context, loc i18n.Locale) ([]*model.ProjectCategoryResponse, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.LocalizeProjectCategories(categories, loc), nil
}

func (s *projectCategoryService) GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.ProjectCategoryResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Localize(loc), nil
}

func (s *projectCategoryService) Create(ctx context.Context, req *model.CreateProjectCategoryRequest) (*model.ProjectCategory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := ""
	if req.Slug != nil && *req.Slug != "" {
		slug = *req.Slug
	} else {
		var err error
		slug, err = utils.UniqueSlug(ctx, utils.Slugify(req.Name), s.repo.ExistsBySlug)
		if err != nil {
			return nil, err
		}
	}

	return s.repo.Create(ctx, req.ToEntity(slug))
}

func (s *projectCategoryService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateProjectCategoryRequest) (*model.ProjectCategory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Slug is immutable on update unless the patch supplies one.
	updated := *current
	req.ApplyToEntity(&updated)

	return s.repo.Update(ctx, &updated)
}

func (s *projectCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

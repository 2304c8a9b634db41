package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/repository"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/utils"
)

type ServiceInterface interface {
	GetAll(ctx context.Context, loc i18n.Locale) ([]*model.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.CategoryResponse, error)
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.RepositoryInterface
}

func NewCategoryService(repo repository.RepositoryInterface) ServiceInterface {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAll(ctx context.Context, loc i18n.Locale) ([]*model.CategoryResponse, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.LocalizeCategories(categories, loc), nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.CategoryResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Localize(loc), nil
}

func (s *categoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
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

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.Category, error) {
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

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

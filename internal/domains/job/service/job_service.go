package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/repository"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

type ServiceInterface interface {
	List(ctx context.Context, status string, loc i18n.Locale) ([]*model.JobResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.JobResponse, error)
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobService struct {
	repo repository.RepositoryInterface
}

func NewJobService(repo repository.RepositoryInterface) ServiceInterface {
	return &jobService{repo: repo}
}

// List defaults to active postings. The literal "all" disables the
// status filter for the admin view.
func (s *jobService) List(ctx context.Context, status string, loc i18n.Locale) ([]*model.JobResponse, error) {
	if status == "" {
		status = model.StatusActive
	}
	jobs, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return model.LocalizeJobs(jobs, loc), nil
}

func (s *jobService) GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*model.JobResponse, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return j.Localize(loc), nil
}

func (s *jobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *jobService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateJobRequest) (*model.Job, error) {
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

func (s *jobService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

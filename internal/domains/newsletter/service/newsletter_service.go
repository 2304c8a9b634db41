package service

import (
	"context"
	"strings"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/repository"
)

type ServiceInterface interface {
	Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context) ([]model.Subscriber, error)
}

type newsletterService struct {
	repo repository.RepositoryInterface
}

func NewNewsletterService(repo repository.RepositoryInterface) ServiceInterface {
	return &newsletterService{repo: repo}
}

// Subscribe is idempotent: the same address twice is one active row.
func (s *newsletterService) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.Subscriber, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Subscribe(ctx, normalizeEmail(req.Email))
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	return s.repo.Unsubscribe(ctx, normalizeEmail(email))
}

func (s *newsletterService) List(ctx context.Context) ([]model.Subscriber, error) {
	return s.repo.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/repository"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/jwt"
)

type ServiceInterface interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	repo       repository.RepositoryInterface
	jwtManager *jwt.Manager
}

func NewAuthService(repo repository.RepositoryInterface, jwtManager *jwt.Manager) ServiceInterface {
	return &authService{repo: repo, jwtManager: jwtManager}
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(admin.ID.String(), admin.Email)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token, Admin: admin}, nil
}

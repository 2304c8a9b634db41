package repository

import (
	"context"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/model"
)

// RepositoryInterface is the admin account data-access contract.
type RepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/model"
)

// RepositoryInterface is the contact message data-access contract.
type RepositoryInterface interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	Create(ctx context.Context, m *model.ContactMessage) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.ContactMessage, error)
	MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error

	// All returns every message newest-first for the spreadsheet export.
	All(ctx context.Context) ([]model.ContactMessage, error)
}

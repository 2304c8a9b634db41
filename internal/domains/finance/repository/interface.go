package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/model"
)

// RepositoryInterface is the finance ledger data-access contract.
type RepositoryInterface interface {
	// List returns entries with dates in [from, to), newest first. Zero
	// bounds mean unbounded.
	List(ctx context.Context, from, to time.Time) ([]model.Entry, error)
	Create(ctx context.Context, e *model.Entry) (*model.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/model"
)

// RepositoryInterface is the newsletter subscriber data-access
// contract.
type RepositoryInterface interface {
	// Subscribe upserts by email: a new address is inserted active, an
	// existing one is reactivated in place.
	Subscribe(ctx context.Context, email string) (*model.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context) ([]model.Subscriber, error)
}

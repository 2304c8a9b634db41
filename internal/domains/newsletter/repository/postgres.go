package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const subscriberColumns = `id, email, status, created_at, updated_at`

func (r *postgresRepository) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	query := `
        INSERT INTO newsletter_subscribers (email, status)
        VALUES ($1, $2)
        ON CONFLICT (email) DO UPDATE SET status = $2, updated_at = NOW()
        RETURNING ` + subscriberColumns

	var s model.Subscriber
	err := r.pool.QueryRow(ctx, query, email, model.StatusActive).
		Scan(&s.ID, &s.Email, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) Unsubscribe(ctx context.Context, email string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscribers SET status = $1, updated_at = NOW() WHERE email = $2`,
		model.StatusUnsubscribed, email)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrSubscriberNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+subscriberColumns+` FROM newsletter_subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, s)
	}
	return subscribers, rows.Err()
}

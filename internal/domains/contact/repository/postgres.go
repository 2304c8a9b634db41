package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const messageColumns = `id, name, email, company, message, service, budget,
    status, notified_at, created_at, updated_at`

func scanMessage(row pgx.Row) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Company, &m.Message, &m.Service, &m.Budget,
		&m.Status, &m.NotifiedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, int64, error) {
	whereClause := ""
	var args []interface{}
	if filter.Status != model.StatusAll {
		whereClause = ` WHERE status = $1`
		args = append(args, filter.Status)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	listArgs := append(args, filter.Limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM contact_messages%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		messageColumns, whereClause, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, total, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx, `SELECT `+messageColumns+` FROM contact_messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return m, nil
}

func (r *postgresRepository) Create(ctx context.Context, m *model.ContactMessage) (*model.ContactMessage, error) {
	query := `
        INSERT INTO contact_messages (name, email, company, message, service, budget, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + messageColumns

	created, err := scanMessage(r.pool.QueryRow(ctx, query,
		m.Name, m.Email, m.Company, m.Message, m.Service, m.Budget, m.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.ContactMessage, error) {
	query := `UPDATE contact_messages SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + messageColumns

	updated, err := scanMessage(r.pool.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to update contact message status: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE contact_messages SET notified_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("failed to mark contact message notified: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (r *postgresRepository) All(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+messageColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

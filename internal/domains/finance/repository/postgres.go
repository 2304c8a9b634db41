package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const entryColumns = `id, type, amount, currency, category, description, date, created_at`

func scanEntry(row pgx.Row) (*model.Entry, error) {
	var e model.Entry
	err := row.Scan(&e.ID, &e.Type, &e.Amount, &e.Currency, &e.Category, &e.Description, &e.Date, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) List(ctx context.Context, from, to time.Time) ([]model.Entry, error) {
	var where []string
	var args []interface{}
	if !from.IsZero() {
		args = append(args, from)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		where = append(where, fmt.Sprintf("date < $%d", len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM finance_entries`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query finance entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan finance entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Entry) (*model.Entry, error) {
	query := `
        INSERT INTO finance_entries (type, amount, currency, category, description, date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + entryColumns

	created, err := scanEntry(r.pool.QueryRow(ctx, query,
		e.Type, e.Amount, e.Currency, e.Category, e.Description, e.Date,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create finance entry: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM finance_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete finance entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrEntryNotFound
	}
	return nil
}

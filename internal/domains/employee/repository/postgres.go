package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const employeeColumns = `id, name, email, position, created_at, updated_at`

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var e model.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) GetAllEmployees(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *postgresRepository) GetEmployeeByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) CreateEmployee(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	query := `INSERT INTO employees (name, email, position) VALUES ($1, $2, $3) RETURNING ` + employeeColumns

	created, err := scanEmployee(r.pool.QueryRow(ctx, query, e.Name, e.Email, e.Position))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrEmployeeNotFound
	}
	return nil
}

const entryColumns = `id, employee_id, date, hours, minutes, project, description, created_at`

func (r *postgresRepository) ListEntries(ctx context.Context, employeeID uuid.UUID) ([]model.TimeEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM time_entries WHERE employee_id = $1 ORDER BY date ASC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []model.TimeEntry
	for rows.Next() {
		var e model.TimeEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.Hours, &e.Minutes,
			&e.Project, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresRepository) CreateEntry(ctx context.Context, e *model.TimeEntry) (*model.TimeEntry, error) {
	query := `
        INSERT INTO time_entries (employee_id, date, hours, minutes, project, description)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + entryColumns

	var created model.TimeEntry
	err := r.pool.QueryRow(ctx, query,
		e.EmployeeID, e.Date, e.Hours, e.Minutes, e.Project, e.Description,
	).Scan(&created.ID, &created.EmployeeID, &created.Date, &created.Hours, &created.Minutes,
		&created.Project, &created.Description, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, model.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrEntryNotFound
	}
	return nil
}

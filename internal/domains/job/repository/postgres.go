package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const jobColumns = `id, title, title_ar, department, department_ar, location, location_ar,
    type, type_ar, experience, experience_ar, description, description_ar,
    salary, salary_ar, team, team_ar, requirements, requirements_ar,
    benefits, benefits_ar, status, application_deadline, created_at, updated_at`

func scanJob(row pgx.Row) (*model.Job, error) {
	var j model.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.TitleAr, &j.Department, &j.DepartmentAr, &j.Location, &j.LocationAr,
		&j.Type, &j.TypeAr, &j.Experience, &j.ExperienceAr, &j.Description, &j.DescriptionAr,
		&j.Salary, &j.SalaryAr, &j.Team, &j.TeamAr, &j.Requirements, &j.RequirementsAr,
		&j.Benefits, &j.BenefitsAr, &j.Status, &j.ApplicationDeadline, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *postgresRepository) List(ctx context.Context, status string) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []interface{}
	if status != model.StatusAll {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	j, err := scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

func (r *postgresRepository) Create(ctx context.Context, j *model.Job) (*model.Job, error) {
	query := `
        INSERT INTO jobs (title, title_ar, department, department_ar, location, location_ar,
            type, type_ar, experience, experience_ar, description, description_ar,
            salary, salary_ar, team, team_ar, requirements, requirements_ar,
            benefits, benefits_ar, status, application_deadline)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
            $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
        RETURNING ` + jobColumns

	created, err := scanJob(r.pool.QueryRow(ctx, query,
		j.Title, j.TitleAr, j.Department, j.DepartmentAr, j.Location, j.LocationAr,
		j.Type, j.TypeAr, j.Experience, j.ExperienceAr, j.Description, j.DescriptionAr,
		j.Salary, j.SalaryAr, j.Team, j.TeamAr, j.Requirements, j.RequirementsAr,
		j.Benefits, j.BenefitsAr, j.Status, j.ApplicationDeadline,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, j *model.Job) (*model.Job, error) {
	query := `
        UPDATE jobs
        SET title = $1, title_ar = $2, department = $3, department_ar = $4,
            location = $5, location_ar = $6, type = $7, type_ar = $8,
            experience = $9, experience_ar = $10, description = $11, description_ar = $12,
            salary = $13, salary_ar = $14, team = $15, team_ar = $16,
            requirements = $17, requirements_ar = $18, benefits = $19, benefits_ar = $20,
            status = $21, application_deadline = $22, updated_at = NOW()
        WHERE id = $23
        RETURNING ` + jobColumns

	updated, err := scanJob(r.pool.QueryRow(ctx, query,
		j.Title, j.TitleAr, j.Department, j.DepartmentAr,
		j.Location, j.LocationAr, j.Type, j.TypeAr,
		j.Experience, j.ExperienceAr, j.Description, j.DescriptionAr,
		j.Salary, j.SalaryAr, j.Team, j.TeamAr,
		j.Requirements, j.RequirementsAr, j.Benefits, j.BenefitsAr,
		j.Status, j.ApplicationDeadline, j.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrJobNotFound
	}
	return nil
}

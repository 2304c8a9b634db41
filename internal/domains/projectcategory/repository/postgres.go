package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/cache"
)

// postgresRepository mirrors the blog category store: Postgres plus a
// redis read-through cache on the taxonomy list, invalidated on every
// write.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

const (
	categoryListCacheKey = "projects:categories:all"
	categoryCacheTTL     = 15 * time.Minute
)

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: cache}
}

const categoryColumns = `id, slug, name, name_ar, description, description_ar,
    color, icon, featured, sort_order, status, created_at, updated_at`

func scanCategory(row pgx.Row) (*model.ProjectCategory, error) {
	var c model.ProjectCategory
	err := row.Scan(
		&c.ID,
		&c.Slug,
		&c.Name,
		&c.NameAr,
		&c.Description,
		&c.DescriptionAr,
		&c.Color,
		&c.Icon,
		&c.Featured,
		&c.SortOrder,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.ProjectCategory, error) {
	var cached []model.ProjectCategory
	if found, err := r.cache.Get(ctx, categoryListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM project_categories ORDER BY sort_order ASC, created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query project categories: %w", err)
	}
	defer rows.Close()

	var categories []model.ProjectCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.cache.Set(ctx, categoryListCacheKey, categories, categoryCacheTTL)
	return categories, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectCategory, error) {
	c, err := scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM project_categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get project category: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *model.ProjectCategory) (*model.ProjectCategory, error) {
	query := `
        INSERT INTO project_categories (slug, name, name_ar, description, description_ar,
            color, icon, featured, sort_order, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + categoryColumns

	created, err := scanCategory(r.pool.QueryRow(ctx, query,
		c.Slug, c.Name, c.NameAr, c.Description, c.DescriptionAr,
		c.Color, c.Icon, c.Featured, c.SortOrder, c.Status,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create project category: %w", err)
	}

	r.cache.Delete(ctx, categoryListCacheKey)
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *model.ProjectCategory) (*model.ProjectCategory, error) {
	query := `
        UPDATE project_categories
        SET slug = $1, name = $2, name_ar = $3, description = $4, description_ar = $5,
            color = $6, icon = $7, featured = $8, sort_order = $9, status = $10, updated_at = NOW()
        WHERE id = $11
        RETURNING ` + categoryColumns

	updated, err := scanCategory(r.pool.QueryRow(ctx, query,
		c.Slug, c.Name, c.NameAr, c.Description, c.DescriptionAr,
		c.Color, c.Icon, c.Featured, c.SortOrder, c.Status, c.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		if isUniqueViolation(err) {
			return nil, model.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update project category: %w", err)
	}

	r.cache.Delete(ctx, categoryListCacheKey)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM project_categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrCategoryHasProjects
		}
		return fmt.Errorf("failed to delete project category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	r.cache.Delete(ctx, categoryListCacheKey)
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM project_categories WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

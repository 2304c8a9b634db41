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

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/cache"
)

// postgresRepository backs blog categories with Postgres plus a redis
// read-through cache for the public taxonomy list. Article and project
// reads deliberately skip the cache (views and slug probes must always
// hit the store); category navigation data has no such constraint.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

const (
	categoryListCacheKey = "blog:categories:all"
	categoryCacheTTL     = 15 * time.Minute
)

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: cache}
}

const categoryColumns = `id, slug, name, name_ar, description, description_ar,
    seo_title, seo_title_ar, seo_description, seo_description_ar,
    color, icon, featured, created_at, updated_at`

func scanCategory(row pgx.Row) (*model.Category, error) {
	var c model.Category
	err := row.Scan(
		&c.ID,
		&c.Slug,
		&c.Name,
		&c.NameAr,
		&c.Description,
		&c.DescriptionAr,
		&c.SeoTitle,
		&c.SeoTitleAr,
		&c.SeoDescription,
		&c.SeoDescriptionAr,
		&c.Color,
		&c.Icon,
		&c.Featured,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	var cached []model.Category
	if found, err := r.cache.Get(ctx, categoryListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM blog_categories ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.cache.Set(ctx, categoryListCacheKey, categories, categoryCacheTTL)
	return categories, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	c, err := scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM blog_categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	query := `
        INSERT INTO blog_categories (slug, name, name_ar, description, description_ar,
            seo_title, seo_title_ar, seo_description, seo_description_ar, color, icon, featured)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING ` + categoryColumns

	created, err := scanCategory(r.pool.QueryRow(ctx, query,
		c.Slug, c.Name, c.NameAr, c.Description, c.DescriptionAr,
		c.SeoTitle, c.SeoTitleAr, c.SeoDescription, c.SeoDescriptionAr,
		c.Color, c.Icon, c.Featured,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.cache.Delete(ctx, categoryListCacheKey)
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	query := `
        UPDATE blog_categories
        SET slug = $1, name = $2, name_ar = $3, description = $4, description_ar = $5,
            seo_title = $6, seo_title_ar = $7, seo_description = $8, seo_description_ar = $9,
            color = $10, icon = $11, featured = $12, updated_at = NOW()
        WHERE id = $13
        RETURNING ` + categoryColumns

	updated, err := scanCategory(r.pool.QueryRow(ctx, query,
		c.Slug, c.Name, c.NameAr, c.Description, c.DescriptionAr,
		c.SeoTitle, c.SeoTitleAr, c.SeoDescription, c.SeoDescriptionAr,
		c.Color, c.Icon, c.Featured, c.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		if isUniqueViolation(err) {
			return nil, model.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	r.cache.Delete(ctx, categoryListCacheKey)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM blog_categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrCategoryHasArticles
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	r.cache.Delete(ctx, categoryListCacheKey)
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blog_categories WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

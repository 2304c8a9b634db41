package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/model"
	authormodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/model"
	categorymodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const articleColumns = `b.id, b.slug, b.title, b.title_ar, b.excerpt, b.excerpt_ar,
    b.content, b.content_ar, b.image, b.read_time, b.featured, b.status, b.views,
    b.tags, b.related_articles, b.author_id, b.category_id, b.created_at, b.updated_at`

const joinedColumns = articleColumns + `,
    au.id, au.email, au.name, au.name_ar, au.role, au.role_ar, au.bio, au.bio_ar,
    au.avatar, au.social_links, au.expertise, au.created_at, au.updated_at,
    c.id, c.slug, c.name, c.name_ar, c.description, c.description_ar,
    c.seo_title, c.seo_title_ar, c.seo_description, c.seo_description_ar,
    c.color, c.icon, c.featured, c.created_at, c.updated_at`

const joinClause = `
    JOIN blog_authors au ON au.id = b.author_id
    JOIN blog_categories c ON c.id = b.category_id`

func scanJoinedArticle(row pgx.Row) (*model.Article, error) {
	var a model.Article
	var au authormodel.Author
	var cat categorymodel.Category

	err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.TitleAr, &a.Excerpt, &a.ExcerptAr,
		&a.Content, &a.ContentAr, &a.Image, &a.ReadTime, &a.Featured, &a.Status, &a.Views,
		&a.Tags, &a.RelatedArticles, &a.AuthorID, &a.CategoryID, &a.CreatedAt, &a.UpdatedAt,
		&au.ID, &au.Email, &au.Name, &au.NameAr, &au.Role, &au.RoleAr, &au.Bio, &au.BioAr,
		&au.Avatar, &au.SocialLinks, &au.Expertise, &au.CreatedAt, &au.UpdatedAt,
		&cat.ID, &cat.Slug, &cat.Name, &cat.NameAr, &cat.Description, &cat.DescriptionAr,
		&cat.SeoTitle, &cat.SeoTitleAr, &cat.SeoDescription, &cat.SeoDescriptionAr,
		&cat.Color, &cat.Icon, &cat.Featured, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Author = &au
	a.Category = &cat
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Article, int64, error) {
	var where []string
	var args []interface{}

	if filter.Status != model.StatusAll {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		where = append(where, fmt.Sprintf("c.slug = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		where = append(where, fmt.Sprintf("b.featured = $%d", len(args)))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM blog_articles b` + joinClause + whereClause
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	listArgs := append(args, filter.Limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM blog_articles b%s%s ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d`,
		joinedColumns, joinClause, whereClause, len(args)+1, len(args)+2,
	)

	rows, err := r.pool.Query(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanJoinedArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	return articles, total, rows.Err()
}

// GetBySlugAndIncrementViews bumps the counter and fetches the row in
// one statement so a found article is always counted exactly once and a
// miss counts nothing.
func (r *postgresRepository) GetBySlugAndIncrementViews(ctx context.Context, slug string) (*model.Article, error) {
	query := `
        WITH b AS (
            UPDATE blog_articles SET views = views + 1
            WHERE slug = $1
            RETURNING *
        )
        SELECT ` + joinedColumns + ` FROM b` + joinClause

	a, err := scanJoinedArticle(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) GetBySlugOrID(ctx context.Context, key string) (*model.Article, error) {
	a, err := r.fetchOne(ctx, "b.slug = $1", key)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, model.ErrArticleNotFound) {
		return nil, err
	}

	id, perr := uuid.Parse(key)
	if perr != nil {
		return nil, model.ErrArticleNotFound
	}
	return r.fetchOne(ctx, "b.id = $1", id)
}

func (r *postgresRepository) fetchOne(ctx context.Context, where string, arg interface{}) (*model.Article, error) {
	query := `SELECT ` + joinedColumns + ` FROM blog_articles b` + joinClause + ` WHERE ` + where

	a, err := scanJoinedArticle(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	query := `
        INSERT INTO blog_articles (slug, title, title_ar, excerpt, excerpt_ar, content, content_ar,
            image, read_time, featured, status, tags, related_articles, author_id, category_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		a.Slug, a.Title, a.TitleAr, a.Excerpt, a.ExcerptAr, a.Content, a.ContentAr,
		a.Image, a.ReadTime, a.Featured, a.Status, a.Tags, a.RelatedArticles, a.AuthorID, a.CategoryID,
	).Scan(&id)
	if err != nil {
		return nil, mapWriteError(err, "create")
	}

	return r.fetchOne(ctx, "b.id = $1", id)
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Article) (*model.Article, error) {
	query := `
        UPDATE blog_articles
        SET slug = $1, title = $2, title_ar = $3, excerpt = $4, excerpt_ar = $5,
            content = $6, content_ar = $7, image = $8, read_time = $9, featured = $10,
            status = $11, tags = $12, related_articles = $13, author_id = $14, category_id = $15,
            updated_at = NOW()
        WHERE id = $16
        RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		a.Slug, a.Title, a.TitleAr, a.Excerpt, a.ExcerptAr,
		a.Content, a.ContentAr, a.Image, a.ReadTime, a.Featured,
		a.Status, a.Tags, a.RelatedArticles, a.AuthorID, a.CategoryID, a.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, mapWriteError(err, "update")
	}

	return r.fetchOne(ctx, "b.id = $1", id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM blog_articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blog_articles WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CountStaleDrafts(ctx context.Context, before time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM blog_articles WHERE status = $1 AND updated_at < $2`,
		model.StatusDraft, before,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stale drafts: %w", err)
	}
	return count, nil
}

func mapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return model.ErrSlugTaken
		case "23503": // foreign_key_violation
			return model.ErrBadReference
		}
	}
	return fmt.Errorf("failed to %s article: %w", op, err)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/project/model"
	projectcategorymodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const projectColumns = `p.id, p.title, p.title_ar, p.description, p.description_ar,
    p.challenge, p.challenge_ar, p.solution, p.solution_ar, p.header_image,
    p.timeline, p.team_size, p.status, p.category_id, p.created_at, p.updated_at`

const joinedColumns = projectColumns + `,
    c.id, c.slug, c.name, c.name_ar, c.description, c.description_ar,
    c.color, c.icon, c.featured, c.sort_order, c.status, c.created_at, c.updated_at`

const joinClause = ` JOIN project_categories c ON c.id = p.category_id`

func scanJoinedProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	var cat projectcategorymodel.ProjectCategory

	err := row.Scan(
		&p.ID, &p.Title, &p.TitleAr, &p.Description, &p.DescriptionAr,
		&p.Challenge, &p.ChallengeAr, &p.Solution, &p.SolutionAr, &p.HeaderImage,
		&p.Timeline, &p.TeamSize, &p.Status, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&cat.ID, &cat.Slug, &cat.Name, &cat.NameAr, &cat.Description, &cat.DescriptionAr,
		&cat.Color, &cat.Icon, &cat.Featured, &cat.SortOrder, &cat.Status, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Category = &cat
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context, categorySlug string) ([]model.Project, error) {
	query := `SELECT ` + joinedColumns + ` FROM projects p` + joinClause
	var args []interface{}
	if categorySlug != "" {
		query += ` WHERE c.slug = $1`
		args = append(args, categorySlug)
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanJoinedProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	query := `SELECT ` + joinedColumns + ` FROM projects p` + joinClause + ` WHERE p.id = $1`

	p, err := scanJoinedProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := r.loadChildren(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepository) loadChildren(ctx context.Context, p *model.Project) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, project_id, name, name_ar, description, description_ar
         FROM project_technologies WHERE project_id = $1 ORDER BY id`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to query technologies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t model.Technology
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Name, &t.NameAr, &t.Description, &t.DescriptionAr); err != nil {
			return fmt.Errorf("failed to scan technology: %w", err)
		}
		p.Technologies = append(p.Technologies, t)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT id, project_id, metric, metric_ar, description, description_ar
         FROM project_results WHERE project_id = $1 ORDER BY id`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.ProjectID, &res.Metric, &res.MetricAr, &res.Description, &res.DescriptionAr); err != nil {
			return fmt.Errorf("failed to scan result: %w", err)
		}
		p.Results = append(p.Results, res)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var t model.Testimonial
	err = r.pool.QueryRow(ctx,
		`SELECT id, project_id, quote, quote_ar, author, author_ar, position, position_ar
         FROM project_testimonials WHERE project_id = $1`, p.ID,
	).Scan(&t.ID, &t.ProjectID, &t.Quote, &t.QuoteAr, &t.Author, &t.AuthorAr, &t.Position, &t.PositionAr)
	if err == nil {
		p.Testimonial = &t
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to query testimonial: %w", err)
	}

	rows, err = r.pool.Query(ctx,
		`SELECT id, project_id, type, content, content_ar, alt, alt_ar, caption, caption_ar,
             level, sort_order, images
         FROM project_content_blocks WHERE project_id = $1 ORDER BY sort_order ASC`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to query content blocks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b model.ContentBlock
		if err := rows.Scan(&b.ID, &b.ProjectID, &b.Type, &b.Content, &b.ContentAr, &b.Alt, &b.AltAr,
			&b.Caption, &b.CaptionAr, &b.Level, &b.SortOrder, &b.Images); err != nil {
			return fmt.Errorf("failed to scan content block: %w", err)
		}
		p.ContentBlocks = append(p.ContentBlocks, b)
	}
	return rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
        INSERT INTO projects (title, title_ar, description, description_ar, challenge, challenge_ar,
            solution, solution_ar, header_image, timeline, team_size, status, category_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id`,
		p.Title, p.TitleAr, p.Description, p.DescriptionAr, p.Challenge, p.ChallengeAr,
		p.Solution, p.SolutionAr, p.HeaderImage, p.Timeline, p.TeamSize, p.Status, p.CategoryID,
	).Scan(&id)
	if err != nil {
		return nil, mapWriteError(err, "create")
	}

	if err := insertTechnologies(ctx, tx, id, p.Technologies); err != nil {
		return nil, err
	}
	if err := insertResults(ctx, tx, id, p.Results); err != nil {
		return nil, err
	}
	if p.Testimonial != nil {
		_, err = tx.Exec(ctx, `
            INSERT INTO project_testimonials (project_id, quote, quote_ar, author, author_ar, position, position_ar)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, p.Testimonial.Quote, p.Testimonial.QuoteAr, p.Testimonial.Author,
			p.Testimonial.AuthorAr, p.Testimonial.Position, p.Testimonial.PositionAr)
		if err != nil {
			return nil, fmt.Errorf("failed to insert testimonial: %w", err)
		}
	}
	if err := insertContentBlocks(ctx, tx, id, p.ContentBlocks); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit project: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Project) error {
	cmdTag, err := r.pool.Exec(ctx, `
        UPDATE projects
        SET title = $1, title_ar = $2, description = $3, description_ar = $4,
            challenge = $5, challenge_ar = $6, solution = $7, solution_ar = $8,
            header_image = $9, timeline = $10, team_size = $11, status = $12,
            category_id = $13, updated_at = NOW()
        WHERE id = $14`,
		p.Title, p.TitleAr, p.Description, p.DescriptionAr,
		p.Challenge, p.ChallengeAr, p.Solution, p.SolutionAr,
		p.HeaderImage, p.Timeline, p.TeamSize, p.Status, p.CategoryID, p.ID,
	)
	if err != nil {
		return mapWriteError(err, "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

// ReplaceTechnologies is delete-all-then-recreate inside one
// transaction. The admin UI always submits the complete desired list.
func (r *postgresRepository) ReplaceTechnologies(ctx context.Context, projectID uuid.UUID, techs []model.Technology) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_technologies WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to clear technologies: %w", err)
	}
	if err := insertTechnologies(ctx, tx, projectID, techs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepository) ReplaceResults(ctx context.Context, projectID uuid.UUID, results []model.Result) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_results WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}
	if err := insertResults(ctx, tx, projectID, results); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepository) ReplaceContentBlocks(ctx context.Context, projectID uuid.UUID, blocks []model.ContentBlock) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_content_blocks WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to clear content blocks: %w", err)
	}
	if err := insertContentBlocks(ctx, tx, projectID, blocks); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpsertTestimonial relies on the unique project_id constraint so a
// concurrent duplicate still converges on a single row.
func (r *postgresRepository) UpsertTestimonial(ctx context.Context, projectID uuid.UUID, t model.Testimonial) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO project_testimonials (project_id, quote, quote_ar, author, author_ar, position, position_ar)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (project_id) DO UPDATE
        SET quote = EXCLUDED.quote, quote_ar = EXCLUDED.quote_ar,
            author = EXCLUDED.author, author_ar = EXCLUDED.author_ar,
            position = EXCLUDED.position, position_ar = EXCLUDED.position_ar`,
		projectID, t.Quote, t.QuoteAr, t.Author, t.AuthorAr, t.Position, t.PositionAr,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert testimonial: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

func insertTechnologies(ctx context.Context, tx pgx.Tx, projectID uuid.UUID, techs []model.Technology) error {
	for i := range techs {
		_, err := tx.Exec(ctx, `
            INSERT INTO project_technologies (project_id, name, name_ar, description, description_ar)
            VALUES ($1, $2, $3, $4, $5)`,
			projectID, techs[i].Name, techs[i].NameAr, techs[i].Description, techs[i].DescriptionAr)
		if err != nil {
			return fmt.Errorf("failed to insert technology: %w", err)
		}
	}
	return nil
}

func insertResults(ctx context.Context, tx pgx.Tx, projectID uuid.UUID, results []model.Result) error {
	for i := range results {
		_, err := tx.Exec(ctx, `
            INSERT INTO project_results (project_id, metric, metric_ar, description, description_ar)
            VALUES ($1, $2, $3, $4, $5)`,
			projectID, results[i].Metric, results[i].MetricAr, results[i].Description, results[i].DescriptionAr)
		if err != nil {
			return fmt.Errorf("failed to insert result: %w", err)
		}
	}
	return nil
}

func insertContentBlocks(ctx context.Context, tx pgx.Tx, projectID uuid.UUID, blocks []model.ContentBlock) error {
	for i := range blocks {
		_, err := tx.Exec(ctx, `
            INSERT INTO project_content_blocks (project_id, type, content, content_ar, alt, alt_ar,
                caption, caption_ar, level, sort_order, images)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			projectID, blocks[i].Type, blocks[i].Content, blocks[i].ContentAr, blocks[i].Alt, blocks[i].AltAr,
			blocks[i].Caption, blocks[i].CaptionAr, blocks[i].Level, blocks[i].SortOrder, blocks[i].Images)
		if err != nil {
			return fmt.Errorf("failed to insert content block: %w", err)
		}
	}
	return nil
}

func mapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return model.ErrBadReference
	}
	return fmt.Errorf("failed to %s project: %w", op, err)
}

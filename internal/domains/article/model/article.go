package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	authormodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/model"
	categorymodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

// Article status values. StatusAll is a list-filter sentinel, never a
// stored status.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusReview    = "review"
	StatusArchived  = "archived"

	StatusAll = "all"
)

// RelatedArticle is a lightweight denormalized reference, not a foreign
// key. Stored as a jsonb list.
type RelatedArticle struct {
	Slug    string  `json:"slug"`
	Title   string  `json:"title"`
	TitleAr *string `json:"titleAr,omitempty"`
}

// Article is a blog article. Title/Excerpt/Content are bilingual pairs.
// Image holds a URL, data-URI or emoji placeholder; which one it is gets
// resolved by the presentation layer, not here.
type Article struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	Slug            string           `json:"slug" db:"slug"`
	Title           string           `json:"title" db:"title"`
	TitleAr         *string          `json:"titleAr,omitempty" db:"title_ar"`
	Excerpt         string           `json:"excerpt" db:"excerpt"`
	ExcerptAr       *string          `json:"excerptAr,omitempty" db:"excerpt_ar"`
	Content         string           `json:"content" db:"content"`
	ContentAr       *string          `json:"contentAr,omitempty" db:"content_ar"`
	Image           *string          `json:"image,omitempty" db:"image"`
	ReadTime        *string          `json:"readTime,omitempty" db:"read_time"`
	Featured        bool             `json:"featured" db:"featured"`
	Status          string           `json:"status" db:"status"`
	Views           int64            `json:"views" db:"views"`
	Tags            []string         `json:"tags" db:"tags"`
	RelatedArticles []RelatedArticle `json:"relatedArticles,omitempty" db:"related_articles"`
	AuthorID        uuid.UUID        `json:"authorId" db:"author_id"`
	CategoryID      uuid.UUID        `json:"categoryId" db:"category_id"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`

	Author   *authormodel.Author     `json:"author,omitempty"`
	Category *categorymodel.Category `json:"category,omitempty"`
}

// ArticleResponse is the locale-resolved view of an article. Author and
// Category are attached by the service after their own localization pass;
// Localize never descends into relations.
type ArticleResponse struct {
	ID              uuid.UUID                        `json:"id"`
	Slug            string                           `json:"slug"`
	Title           string                           `json:"title"`
	Excerpt         string                           `json:"excerpt"`
	Content         string                           `json:"content"`
	Image           *string                          `json:"image,omitempty"`
	ReadTime        *string                          `json:"readTime,omitempty"`
	Featured        bool                             `json:"featured"`
	Status          string                           `json:"status"`
	Views           int64                            `json:"views"`
	Tags            []string                         `json:"tags"`
	RelatedArticles []RelatedArticle                 `json:"relatedArticles,omitempty"`
	Author          *authormodel.AuthorResponse      `json:"author,omitempty"`
	Category        *categorymodel.CategoryResponse  `json:"category,omitempty"`
	CreatedAt       time.Time                        `json:"createdAt"`
	UpdatedAt       time.Time                        `json:"updatedAt"`
}

// Localize resolves the article's own bilingual fields only. Relations
// are localized separately and spliced back on by the caller.
func (a *Article) Localize(loc i18n.Locale) *ArticleResponse {
	if a == nil {
		return nil
	}
	return &ArticleResponse{
		ID:              a.ID,
		Slug:            a.Slug,
		Title:           i18n.Resolve(loc, a.Title, a.TitleAr),
		Excerpt:         i18n.Resolve(loc, a.Excerpt, a.ExcerptAr),
		Content:         i18n.Resolve(loc, a.Content, a.ContentAr),
		Image:           a.Image,
		ReadTime:        a.ReadTime,
		Featured:        a.Featured,
		Status:          a.Status,
		Views:           a.Views,
		Tags:            a.Tags,
		RelatedArticles: a.RelatedArticles,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ListFilter carries the list query parameters. Status "all" disables
// the status filter entirely.
type ListFilter struct {
	Page         int
	Limit        int
	CategorySlug string
	Featured     *bool
	Status       string
}

// CreateArticleRequest - POST /admin/blog/articles. Slug is generated
// from the title when absent.
type CreateArticleRequest struct {
	Slug            *string          `json:"slug,omitempty"`
	Title           string           `json:"title"`
	TitleAr         *string          `json:"titleAr,omitempty"`
	Excerpt         string           `json:"excerpt"`
	ExcerptAr       *string          `json:"excerptAr,omitempty"`
	Content         string           `json:"content"`
	ContentAr       *string          `json:"contentAr,omitempty"`
	Image           *string          `json:"image,omitempty"`
	ReadTime        *string          `json:"readTime,omitempty"`
	Featured        bool             `json:"featured"`
	Status          string           `json:"status,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	RelatedArticles []RelatedArticle `json:"relatedArticles,omitempty"`
	AuthorID        uuid.UUID        `json:"authorId"`
	CategoryID      uuid.UUID        `json:"categoryId"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(5, 200).Error("title must be 5-200 characters"),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("excerpt is required"),
			validation.Length(50, 500).Error("excerpt must be 50-500 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(100, 0).Error("content must be at least 100 characters"),
		),
		validation.Field(&r.Status, validation.In(StatusDraft, StatusPublished, StatusReview, StatusArchived)),
		validation.Field(&r.AuthorID, validation.Required.Error("authorId is required")),
		validation.Field(&r.CategoryID, validation.Required.Error("categoryId is required")),
	)
}

// ToEntity converts the request into an Article, applying defaults:
// status draft, not featured, empty tag list.
func (r *CreateArticleRequest) ToEntity(slug string) *Article {
	status := r.Status
	if status == "" {
		status = StatusDraft
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Article{
		Slug:            slug,
		Title:           r.Title,
		TitleAr:         r.TitleAr,
		Excerpt:         r.Excerpt,
		ExcerptAr:       r.ExcerptAr,
		Content:         r.Content,
		ContentAr:       r.ContentAr,
		Image:           r.Image,
		ReadTime:        r.ReadTime,
		Featured:        r.Featured,
		Status:          status,
		Tags:            tags,
		RelatedArticles: r.RelatedArticles,
		AuthorID:        r.AuthorID,
		CategoryID:      r.CategoryID,
	}
}

// UpdateArticleRequest - PUT /admin/blog/articles/:slugOrId. All fields
// optional; a changed title never regenerates the slug.
type UpdateArticleRequest struct {
	Slug            *string           `json:"slug,omitempty"`
	Title           *string           `json:"title,omitempty"`
	TitleAr         *string           `json:"titleAr,omitempty"`
	Excerpt         *string           `json:"excerpt,omitempty"`
	ExcerptAr       *string           `json:"excerptAr,omitempty"`
	Content         *string           `json:"content,omitempty"`
	ContentAr       *string           `json:"contentAr,omitempty"`
	Image           *string           `json:"image,omitempty"`
	ReadTime        *string           `json:"readTime,omitempty"`
	Featured        *bool             `json:"featured,omitempty"`
	Status          *string           `json:"status,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	RelatedArticles *[]RelatedArticle `json:"relatedArticles,omitempty"`
	AuthorID        *uuid.UUID        `json:"authorId,omitempty"`
	CategoryID      *uuid.UUID        `json:"categoryId,omitempty"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(5, 200).Error("title must be 5-200 characters")),
		validation.Field(&r.Excerpt, validation.Length(50, 500).Error("excerpt must be 50-500 characters")),
		validation.Field(&r.Content, validation.Length(100, 0).Error("content must be at least 100 characters")),
		validation.Field(&r.Status, validation.In(StatusDraft, StatusPublished, StatusReview, StatusArchived)),
	)
}

// ApplyToEntity applies non-nil patch fields onto an existing article.
func (r *UpdateArticleRequest) ApplyToEntity(a *Article) {
	if r.Slug != nil && *r.Slug != "" {
		a.Slug = *r.Slug
	}
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.TitleAr != nil {
		a.TitleAr = r.TitleAr
	}
	if r.Excerpt != nil {
		a.Excerpt = *r.Excerpt
	}
	if r.ExcerptAr != nil {
		a.ExcerptAr = r.ExcerptAr
	}
	if r.Content != nil {
		a.Content = *r.Content
	}
	if r.ContentAr != nil {
		a.ContentAr = r.ContentAr
	}
	if r.Image != nil {
		a.Image = r.Image
	}
	if r.ReadTime != nil {
		a.ReadTime = r.ReadTime
	}
	if r.Featured != nil {
		a.Featured = *r.Featured
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.Tags != nil {
		a.Tags = r.Tags
	}
	if r.RelatedArticles != nil {
		a.RelatedArticles = *r.RelatedArticles
	}
	if r.AuthorID != nil {
		a.AuthorID = *r.AuthorID
	}
	if r.CategoryID != nil {
		a.CategoryID = *r.CategoryID
	}
}

package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

// Category is a blog category. Name/Description and the SEO fields are
// bilingual pairs.
type Category struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Slug             string    `json:"slug" db:"slug"`
	Name             string    `json:"name" db:"name"`
	NameAr           *string   `json:"nameAr,omitempty" db:"name_ar"`
	Description      string    `json:"description" db:"description"`
	DescriptionAr    *string   `json:"descriptionAr,omitempty" db:"description_ar"`
	SeoTitle         *string   `json:"seoTitle,omitempty" db:"seo_title"`
	SeoTitleAr       *string   `json:"seoTitleAr,omitempty" db:"seo_title_ar"`
	SeoDescription   *string   `json:"seoDescription,omitempty" db:"seo_description"`
	SeoDescriptionAr *string   `json:"seoDescriptionAr,omitempty" db:"seo_description_ar"`
	Color            *string   `json:"color,omitempty" db:"color"`
	Icon             *string   `json:"icon,omitempty" db:"icon"`
	Featured         bool      `json:"featured" db:"featured"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// CategoryResponse is the locale-resolved view of a category.
type CategoryResponse struct {
	ID             uuid.UUID `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	SeoTitle       string    `json:"seoTitle,omitempty"`
	SeoDescription string    `json:"seoDescription,omitempty"`
	Color          *string   `json:"color,omitempty"`
	Icon           *string   `json:"icon,omitempty"`
	Featured       bool      `json:"featured"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Localize resolves bilingual fields. Nil input passes through.
func (c *Category) Localize(loc i18n.Locale) *CategoryResponse {
	if c == nil {
		return nil
	}
	resp := &CategoryResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        i18n.Resolve(loc, c.Name, c.NameAr),
		Description: i18n.Resolve(loc, c.Description, c.DescriptionAr),
		Color:       c.Color,
		Icon:        c.Icon,
		Featured:    c.Featured,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.SeoTitle != nil {
		resp.SeoTitle = i18n.Resolve(loc, *c.SeoTitle, c.SeoTitleAr)
	}
	if c.SeoDescription != nil {
		resp.SeoDescription = i18n.Resolve(loc, *c.SeoDescription, c.SeoDescriptionAr)
	}
	return resp
}

// LocalizeCategories maps Localize over a slice.
func LocalizeCategories(categories []Category, loc i18n.Locale) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, categories[i].Localize(loc))
	}
	return out
}

// CreateCategoryRequest - POST /admin/blog/categories. Slug is generated
// from the name when absent.
type CreateCategoryRequest struct {
	Slug             *string `json:"slug,omitempty"`
	Name             string  `json:"name"`
	NameAr           *string `json:"nameAr,omitempty"`
	Description      string  `json:"description"`
	DescriptionAr    *string `json:"descriptionAr,omitempty"`
	SeoTitle         *string `json:"seoTitle,omitempty"`
	SeoTitleAr       *string `json:"seoTitleAr,omitempty"`
	SeoDescription   *string `json:"seoDescription,omitempty"`
	SeoDescriptionAr *string `json:"seoDescriptionAr,omitempty"`
	Color            *string `json:"color,omitempty"`
	Icon             *string `json:"icon,omitempty"`
	Featured         bool    `json:"featured"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
	)
}

func (r *CreateCategoryRequest) ToEntity(slug string) *Category {
	return &Category{
		Slug:             slug,
		Name:             r.Name,
		NameAr:           r.NameAr,
		Description:      r.Description,
		DescriptionAr:    r.DescriptionAr,
		SeoTitle:         r.SeoTitle,
		SeoTitleAr:       r.SeoTitleAr,
		SeoDescription:   r.SeoDescription,
		SeoDescriptionAr: r.SeoDescriptionAr,
		Color:            r.Color,
		Icon:             r.Icon,
		Featured:         r.Featured,
	}
}

// UpdateCategoryRequest - PUT /admin/blog/categories/:id.
type UpdateCategoryRequest struct {
	Slug             *string `json:"slug,omitempty"`
	Name             *string `json:"name,omitempty"`
	NameAr           *string `json:"nameAr,omitempty"`
	Description      *string `json:"description,omitempty"`
	DescriptionAr    *string `json:"descriptionAr,omitempty"`
	SeoTitle         *string `json:"seoTitle,omitempty"`
	SeoTitleAr       *string `json:"seoTitleAr,omitempty"`
	SeoDescription   *string `json:"seoDescription,omitempty"`
	SeoDescriptionAr *string `json:"seoDescriptionAr,omitempty"`
	Color            *string `json:"color,omitempty"`
	Icon             *string `json:"icon,omitempty"`
	Featured         *bool   `json:"featured,omitempty"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(2, 100)),
	)
}

func (r *UpdateCategoryRequest) ApplyToEntity(c *Category) {
	if r.Slug != nil {
		c.Slug = *r.Slug
	}
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.NameAr != nil {
		c.NameAr = r.NameAr
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.DescriptionAr != nil {
		c.DescriptionAr = r.DescriptionAr
	}
	if r.SeoTitle != nil {
		c.SeoTitle = r.SeoTitle
	}
	if r.SeoTitleAr != nil {
		c.SeoTitleAr = r.SeoTitleAr
	}
	if r.SeoDescription != nil {
		c.SeoDescription = r.SeoDescription
	}
	if r.SeoDescriptionAr != nil {
		c.SeoDescriptionAr = r.SeoDescriptionAr
	}
	if r.Color != nil {
		c.Color = r.Color
	}
	if r.Icon != nil {
		c.Icon = r.Icon
	}
	if r.Featured != nil {
		c.Featured = *r.Featured
	}
}

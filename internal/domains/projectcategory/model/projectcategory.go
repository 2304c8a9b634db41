package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

// ProjectCategory is a portfolio taxonomy entry. Unlike blog categories
// it carries a sort order and an active/inactive status for the public
// navigation.
type ProjectCategory struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Slug          string    `json:"slug" db:"slug"`
	Name          string    `json:"name" db:"name"`
	NameAr        *string   `json:"nameAr,omitempty" db:"name_ar"`
	Description   string    `json:"description" db:"description"`
	DescriptionAr *string   `json:"descriptionAr,omitempty" db:"description_ar"`
	Color         *string   `json:"color,omitempty" db:"color"`
	Icon          *string   `json:"icon,omitempty" db:"icon"`
	Featured      bool      `json:"featured" db:"featured"`
	SortOrder     int       `json:"sortOrder" db:"sort_order"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

type ProjectCategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       *string   `json:"color,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"sortOrder"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Localize resolves bilingual fields. Nil input passes through.
func (c *ProjectCategory) Localize(loc i18n.Locale) *ProjectCategoryResponse {
	if c == nil {
		return nil
	}
	return &ProjectCategoryResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        i18n.Resolve(loc, c.Name, c.NameAr),
		Description: i18n.Resolve(loc, c.Description, c.DescriptionAr),
		Color:       c.Color,
		Icon:        c.Icon,
		Featured:    c.Featured,
		SortOrder:   c.SortOrder,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// LocalizeProjectCategories maps Localize over a slice.
func LocalizeProjectCategories(categories []ProjectCategory, loc i18n.Locale) []*ProjectCategoryResponse {
	out := make([]*ProjectCategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, categories[i].Localize(loc))
	}
	return out
}

// CreateProjectCategoryRequest - POST /admin/project-categories.
type CreateProjectCategoryRequest struct {
	Slug          *string `json:"slug,omitempty"`
	Name          string  `json:"name"`
	NameAr        *string `json:"nameAr,omitempty"`
	Description   string  `json:"description"`
	DescriptionAr *string `json:"descriptionAr,omitempty"`
	Color         *string `json:"color,omitempty"`
	Icon          *string `json:"icon,omitempty"`
	Featured      bool    `json:"featured"`
	SortOrder     int     `json:"sortOrder"`
	Status        string  `json:"status"`
}

func (r CreateProjectCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Status, validation.In("active", "inactive")),
	)
}

func (r *CreateProjectCategoryRequest) ToEntity(slug string) *ProjectCategory {
	status := r.Status
	if status == "" {
		status = "active"
	}
	return &ProjectCategory{
		Slug:          slug,
		Name:          r.Name,
		NameAr:        r.NameAr,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
		Color:         r.Color,
		Icon:          r.Icon,
		Featured:      r.Featured,
		SortOrder:     r.SortOrder,
		Status:        status,
	}
}

// UpdateProjectCategoryRequest - PUT /admin/project-categories/:id.
type UpdateProjectCategoryRequest struct {
	Slug          *string `json:"slug,omitempty"`
	Name          *string `json:"name,omitempty"`
	NameAr        *string `json:"nameAr,omitempty"`
	Description   *string `json:"description,omitempty"`
	DescriptionAr *string `json:"descriptionAr,omitempty"`
	Color         *string `json:"color,omitempty"`
	Icon          *string `json:"icon,omitempty"`
	Featured      *bool   `json:"featured,omitempty"`
	SortOrder     *int    `json:"sortOrder,omitempty"`
	Status        *string `json:"status,omitempty"`
}

func (r UpdateProjectCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(2, 100)),
		validation.Field(&r.Status, validation.In("active", "inactive")),
	)
}

func (r *UpdateProjectCategoryRequest) ApplyToEntity(c *ProjectCategory) {
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
	if r.Color != nil {
		c.Color = r.Color
	}
	if r.Icon != nil {
		c.Icon = r.Icon
	}
	if r.Featured != nil {
		c.Featured = *r.Featured
	}
	if r.SortOrder != nil {
		c.SortOrder = *r.SortOrder
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
}

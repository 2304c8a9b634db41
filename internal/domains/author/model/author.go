package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

// SocialLinks holds the recognized social profile URLs, all optional.
// Stored as a jsonb column.
type SocialLinks struct {
	Twitter  *string `json:"twitter,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`
	Github   *string `json:"github,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// Author is a blog author. Name/Role/Bio are bilingual field pairs.
type Author struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Email       string       `json:"email" db:"email"`
	Name        string       `json:"name" db:"name"`
	NameAr      *string      `json:"nameAr,omitempty" db:"name_ar"`
	Role        string       `json:"role" db:"role"`
	RoleAr      *string      `json:"roleAr,omitempty" db:"role_ar"`
	Bio         string       `json:"bio" db:"bio"`
	BioAr       *string      `json:"bioAr,omitempty" db:"bio_ar"`
	Avatar      *string      `json:"avatar,omitempty" db:"avatar"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty" db:"social_links"`
	Expertise   []string     `json:"expertise" db:"expertise"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}

// AuthorResponse is the locale-resolved view of an author.
type AuthorResponse struct {
	ID          uuid.UUID    `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Bio         string       `json:"bio"`
	Avatar      *string      `json:"avatar,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	Expertise   []string     `json:"expertise"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Localize resolves the bilingual fields for the requested locale.
// Nil input passes through unchanged.
func (a *Author) Localize(loc i18n.Locale) *AuthorResponse {
	if a == nil {
		return nil
	}
	return &AuthorResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        i18n.Resolve(loc, a.Name, a.NameAr),
		Role:        i18n.Resolve(loc, a.Role, a.RoleAr),
		Bio:         i18n.Resolve(loc, a.Bio, a.BioAr),
		Avatar:      a.Avatar,
		SocialLinks: a.SocialLinks,
		Expertise:   a.Expertise,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// LocalizeAuthors maps Localize over a slice.
func LocalizeAuthors(authors []Author, loc i18n.Locale) []*AuthorResponse {
	out := make([]*AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, authors[i].Localize(loc))
	}
	return out
}

// CreateAuthorRequest - POST /admin/authors
type CreateAuthorRequest struct {
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	NameAr      *string      `json:"nameAr,omitempty"`
	Role        string       `json:"role"`
	RoleAr      *string      `json:"roleAr,omitempty"`
	Bio         string       `json:"bio"`
	BioAr       *string      `json:"bioAr,omitempty"`
	Avatar      *string      `json:"avatar,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	Expertise   []string     `json:"expertise,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Role, validation.Required.Error("role is required")),
		validation.Field(&r.Bio, validation.Required.Error("bio is required")),
	)
}

// ToEntity converts the request into an Author entity.
func (r *CreateAuthorRequest) ToEntity() *Author {
	expertise := r.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	return &Author{
		Email:       r.Email,
		Name:        r.Name,
		NameAr:      r.NameAr,
		Role:        r.Role,
		RoleAr:      r.RoleAr,
		Bio:         r.Bio,
		BioAr:       r.BioAr,
		Avatar:      r.Avatar,
		SocialLinks: r.SocialLinks,
		Expertise:   expertise,
	}
}

// UpdateAuthorRequest - PUT /admin/authors/:id. All fields optional.
type UpdateAuthorRequest struct {
	Email       *string      `json:"email,omitempty"`
	Name        *string      `json:"name,omitempty"`
	NameAr      *string      `json:"nameAr,omitempty"`
	Role        *string      `json:"role,omitempty"`
	RoleAr      *string      `json:"roleAr,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	BioAr       *string      `json:"bioAr,omitempty"`
	Avatar      *string      `json:"avatar,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	Expertise   []string     `json:"expertise,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email.Error("invalid email format")),
		validation.Field(&r.Name, validation.Length(2, 100)),
	)
}

// ApplyToEntity applies non-nil patch fields onto an existing author.
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if r.Email != nil {
		a.Email = *r.Email
	}
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.NameAr != nil {
		a.NameAr = r.NameAr
	}
	if r.Role != nil {
		a.Role = *r.Role
	}
	if r.RoleAr != nil {
		a.RoleAr = r.RoleAr
	}
	if r.Bio != nil {
		a.Bio = *r.Bio
	}
	if r.BioAr != nil {
		a.BioAr = r.BioAr
	}
	if r.Avatar != nil {
		a.Avatar = r.Avatar
	}
	if r.SocialLinks != nil {
		a.SocialLinks = r.SocialLinks
	}
	if r.Expertise != nil {
		a.Expertise = r.Expertise
	}
}

package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	projectcategorymodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

const (
	StatusPlanning  = "planning"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusOnHold    = "on-hold"
)

// Content block types. Heading blocks carry a level, image grids carry
// an images list.
const (
	BlockTypeHeading   = "heading"
	BlockTypeParagraph = "paragraph"
	BlockTypeImage     = "image"
	BlockTypeImageGrid = "imageGrid"
)

// Project is a portfolio case study. It owns its technologies, results,
// testimonial and content blocks; updates replace those collections
// wholesale rather than merging.
type Project struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	TitleAr       *string   `json:"titleAr,omitempty" db:"title_ar"`
	Description   string    `json:"description" db:"description"`
	DescriptionAr *string   `json:"descriptionAr,omitempty" db:"description_ar"`
	Challenge     string    `json:"challenge" db:"challenge"`
	ChallengeAr   *string   `json:"challengeAr,omitempty" db:"challenge_ar"`
	Solution      string    `json:"solution" db:"solution"`
	SolutionAr    *string   `json:"solutionAr,omitempty" db:"solution_ar"`
	HeaderImage   *string   `json:"headerImage,omitempty" db:"header_image"`
	Timeline      *string   `json:"timeline,omitempty" db:"timeline"`
	TeamSize      *string   `json:"teamSize,omitempty" db:"team_size"`
	Status        string    `json:"status" db:"status"`
	CategoryID    uuid.UUID `json:"categoryId" db:"category_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Category      *projectcategorymodel.ProjectCategory `json:"category,omitempty" db:"-"`
	Technologies  []Technology                          `json:"technologies,omitempty" db:"-"`
	Results       []Result                              `json:"results,omitempty" db:"-"`
	Testimonial   *Testimonial                          `json:"testimonial,omitempty" db:"-"`
	ContentBlocks []ContentBlock                        `json:"contentBlocks,omitempty" db:"-"`
}

// Technology is an owned child row, replaced wholesale on update.
type Technology struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ProjectID     uuid.UUID `json:"-" db:"project_id"`
	Name          string    `json:"name" db:"name"`
	NameAr        *string   `json:"nameAr,omitempty" db:"name_ar"`
	Description   *string   `json:"description,omitempty" db:"description"`
	DescriptionAr *string   `json:"descriptionAr,omitempty" db:"description_ar"`
}

// Result is an owned child row holding a headline metric.
type Result struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ProjectID     uuid.UUID `json:"-" db:"project_id"`
	Metric        string    `json:"metric" db:"metric"`
	MetricAr      *string   `json:"metricAr,omitempty" db:"metric_ar"`
	Description   *string   `json:"description,omitempty" db:"description"`
	DescriptionAr *string   `json:"descriptionAr,omitempty" db:"description_ar"`
}

// Testimonial is at most one per project, updated in place when one
// already exists.
type Testimonial struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ProjectID  uuid.UUID `json:"-" db:"project_id"`
	Quote      string    `json:"quote" db:"quote"`
	QuoteAr    *string   `json:"quoteAr,omitempty" db:"quote_ar"`
	Author     string    `json:"author" db:"author"`
	AuthorAr   *string   `json:"authorAr,omitempty" db:"author_ar"`
	Position   string    `json:"position" db:"position"`
	PositionAr *string   `json:"positionAr,omitempty" db:"position_ar"`
}

// BlockImage is one entry of an image grid, stored inside the block's
// jsonb images column.
type BlockImage struct {
	URL       string  `json:"url"`
	Alt       *string `json:"alt,omitempty"`
	AltAr     *string `json:"altAr,omitempty"`
	Caption   *string `json:"caption,omitempty"`
	CaptionAr *string `json:"captionAr,omitempty"`
}

// ContentBlock is an ordered piece of the case study body.
type ContentBlock struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	ProjectID uuid.UUID    `json:"-" db:"project_id"`
	Type      string       `json:"type" db:"type"`
	Content   *string      `json:"content,omitempty" db:"content"`
	ContentAr *string      `json:"contentAr,omitempty" db:"content_ar"`
	Alt       *string      `json:"alt,omitempty" db:"alt"`
	AltAr     *string      `json:"altAr,omitempty" db:"alt_ar"`
	Caption   *string      `json:"caption,omitempty" db:"caption"`
	CaptionAr *string      `json:"captionAr,omitempty" db:"caption_ar"`
	Level     *int         `json:"level,omitempty" db:"level"`
	SortOrder int          `json:"order" db:"sort_order"`
	Images    []BlockImage `json:"images,omitempty" db:"images"`
}

// ProjectResponse is the locale-resolved view of a project with every
// owned collection resolved as well.
type ProjectResponse struct {
	ID            uuid.UUID                                     `json:"id"`
	Title         string                                        `json:"title"`
	Description   string                                        `json:"description"`
	Challenge     string                                        `json:"challenge"`
	Solution      string                                        `json:"solution"`
	HeaderImage   *string                                       `json:"headerImage,omitempty"`
	Timeline      *string                                       `json:"timeline,omitempty"`
	TeamSize      *string                                       `json:"teamSize,omitempty"`
	Status        string                                        `json:"status"`
	CategoryID    uuid.UUID                                     `json:"categoryId"`
	CreatedAt     time.Time                                     `json:"createdAt"`
	UpdatedAt     time.Time                                     `json:"updatedAt"`
	Category      *projectcategorymodel.ProjectCategoryResponse `json:"category,omitempty"`
	Technologies  []*TechnologyResponse                         `json:"technologies,omitempty"`
	Results       []*ResultResponse                             `json:"results,omitempty"`
	Testimonial   *TestimonialResponse                          `json:"testimonial,omitempty"`
	ContentBlocks []*ContentBlockResponse                       `json:"contentBlocks,omitempty"`
}

type TechnologyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

type ResultResponse struct {
	ID          uuid.UUID `json:"id"`
	Metric      string    `json:"metric"`
	Description string    `json:"description,omitempty"`
}

type TestimonialResponse struct {
	ID       uuid.UUID `json:"id"`
	Quote    string    `json:"quote"`
	Author   string    `json:"author"`
	Position string    `json:"position"`
}

type BlockImageResponse struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type ContentBlockResponse struct {
	ID      uuid.UUID            `json:"id"`
	Type    string               `json:"type"`
	Content string               `json:"content,omitempty"`
	Alt     string               `json:"alt,omitempty"`
	Caption string               `json:"caption,omitempty"`
	Level   *int                 `json:"level,omitempty"`
	Order   int                  `json:"order"`
	Images  []BlockImageResponse `json:"images,omitempty"`
}

// Localize resolves the project's own bilingual fields only. The
// category and owned collections are localized separately by the
// service and spliced back on.
func (p *Project) Localize(loc i18n.Locale) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{
		ID:          p.ID,
		Title:       i18n.Resolve(loc, p.Title, p.TitleAr),
		Description: i18n.Resolve(loc, p.Description, p.DescriptionAr),
		Challenge:   i18n.Resolve(loc, p.Challenge, p.ChallengeAr),
		Solution:    i18n.Resolve(loc, p.Solution, p.SolutionAr),
		HeaderImage: p.HeaderImage,
		Timeline:    p.Timeline,
		TeamSize:    p.TeamSize,
		Status:      p.Status,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (t *Technology) Localize(loc i18n.Locale) *TechnologyResponse {
	if t == nil {
		return nil
	}
	resp := &TechnologyResponse{
		ID:   t.ID,
		Name: i18n.Resolve(loc, t.Name, t.NameAr),
	}
	if t.Description != nil {
		resp.Description = i18n.Resolve(loc, *t.Description, t.DescriptionAr)
	}
	return resp
}

func (r *Result) Localize(loc i18n.Locale) *ResultResponse {
	if r == nil {
		return nil
	}
	resp := &ResultResponse{
		ID:     r.ID,
		Metric: i18n.Resolve(loc, r.Metric, r.MetricAr),
	}
	if r.Description != nil {
		resp.Description = i18n.Resolve(loc, *r.Description, r.DescriptionAr)
	}
	return resp
}

func (t *Testimonial) Localize(loc i18n.Locale) *TestimonialResponse {
	if t == nil {
		return nil
	}
	return &TestimonialResponse{
		ID:       t.ID,
		Quote:    i18n.Resolve(loc, t.Quote, t.QuoteAr),
		Author:   i18n.Resolve(loc, t.Author, t.AuthorAr),
		Position: i18n.Resolve(loc, t.Position, t.PositionAr),
	}
}

// Localize resolves a content block including its nested grid images.
// An absent images list stays absent, it is never substituted with an
// empty slice.
func (b *ContentBlock) Localize(loc i18n.Locale) *ContentBlockResponse {
	if b == nil {
		return nil
	}
	resp := &ContentBlockResponse{
		ID:    b.ID,
		Type:  b.Type,
		Level: b.Level,
		Order: b.SortOrder,
	}
	if b.Content != nil {
		resp.Content = i18n.Resolve(loc, *b.Content, b.ContentAr)
	}
	if b.Alt != nil {
		resp.Alt = i18n.Resolve(loc, *b.Alt, b.AltAr)
	}
	if b.Caption != nil {
		resp.Caption = i18n.Resolve(loc, *b.Caption, b.CaptionAr)
	}
	if b.Images != nil {
		resp.Images = make([]BlockImageResponse, 0, len(b.Images))
		for _, img := range b.Images {
			out := BlockImageResponse{URL: img.URL}
			if img.Alt != nil {
				out.Alt = i18n.Resolve(loc, *img.Alt, img.AltAr)
			}
			if img.Caption != nil {
				out.Caption = i18n.Resolve(loc, *img.Caption, img.CaptionAr)
			}
			resp.Images = append(resp.Images, out)
		}
	}
	return resp
}

// Child payload shapes, shared by create and update. Updates always
// submit the complete desired list, so there are no per-item ids.

type TechnologyInput struct {
	Name          string  `json:"name"`
	NameAr        *string `json:"nameAr,omitempty"`
	Description   *string `json:"description,omitempty"`
	DescriptionAr *string `json:"descriptionAr,omitempty"`
}

func (t TechnologyInput) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required.Error("technology name is required")),
	)
}

func (t *TechnologyInput) ToEntity() Technology {
	return Technology{
		Name:          t.Name,
		NameAr:        t.NameAr,
		Description:   t.Description,
		DescriptionAr: t.DescriptionAr,
	}
}

type ResultInput struct {
	Metric        string  `json:"metric"`
	MetricAr      *string `json:"metricAr,omitempty"`
	Description   *string `json:"description,omitempty"`
	DescriptionAr *string `json:"descriptionAr,omitempty"`
}

func (r ResultInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Metric, validation.Required.Error("result metric is required")),
	)
}

func (r *ResultInput) ToEntity() Result {
	return Result{
		Metric:        r.Metric,
		MetricAr:      r.MetricAr,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
	}
}

type TestimonialInput struct {
	Quote      string  `json:"quote"`
	QuoteAr    *string `json:"quoteAr,omitempty"`
	Author     string  `json:"author"`
	AuthorAr   *string `json:"authorAr,omitempty"`
	Position   string  `json:"position"`
	PositionAr *string `json:"positionAr,omitempty"`
}

func (t TestimonialInput) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Quote, validation.Required.Error("quote is required")),
		validation.Field(&t.Author, validation.Required.Error("author is required")),
	)
}

// IsEmpty reports whether the payload carries no content at all. An
// empty testimonial object on update is a no-op rather than an upsert.
func (t *TestimonialInput) IsEmpty() bool {
	return t == nil || (t.Quote == "" && t.Author == "" && t.Position == "")
}

func (t *TestimonialInput) ToEntity() Testimonial {
	return Testimonial{
		Quote:      t.Quote,
		QuoteAr:    t.QuoteAr,
		Author:     t.Author,
		AuthorAr:   t.AuthorAr,
		Position:   t.Position,
		PositionAr: t.PositionAr,
	}
}

type ContentBlockInput struct {
	Type      string       `json:"type"`
	Content   *string      `json:"content,omitempty"`
	ContentAr *string      `json:"contentAr,omitempty"`
	Alt       *string      `json:"alt,omitempty"`
	AltAr     *string      `json:"altAr,omitempty"`
	Caption   *string      `json:"caption,omitempty"`
	CaptionAr *string      `json:"captionAr,omitempty"`
	Level     *int         `json:"level,omitempty"`
	Order     int          `json:"order"`
	Images    []BlockImage `json:"images,omitempty"`
}

func (b ContentBlockInput) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Type,
			validation.Required.Error("block type is required"),
			validation.In(BlockTypeHeading, BlockTypeParagraph, BlockTypeImage, BlockTypeImageGrid),
		),
		validation.Field(&b.Level, validation.Min(1), validation.Max(6)),
	)
}

func (b *ContentBlockInput) ToEntity() ContentBlock {
	return ContentBlock{
		Type:      b.Type,
		Content:   b.Content,
		ContentAr: b.ContentAr,
		Alt:       b.Alt,
		AltAr:     b.AltAr,
		Caption:   b.Caption,
		CaptionAr: b.CaptionAr,
		Level:     b.Level,
		SortOrder: b.Order,
		Images:    b.Images,
	}
}

// CreateProjectRequest - POST /admin/projects. Children supplied here
// are bulk-created together with the project.
type CreateProjectRequest struct {
	Title         string              `json:"title"`
	TitleAr       *string             `json:"titleAr,omitempty"`
	Description   string              `json:"description"`
	DescriptionAr *string             `json:"descriptionAr,omitempty"`
	Challenge     string              `json:"challenge"`
	ChallengeAr   *string             `json:"challengeAr,omitempty"`
	Solution      string              `json:"solution"`
	SolutionAr    *string             `json:"solutionAr,omitempty"`
	HeaderImage   *string             `json:"headerImage,omitempty"`
	Timeline      *string             `json:"timeline,omitempty"`
	TeamSize      *string             `json:"teamSize,omitempty"`
	Status        string              `json:"status"`
	CategoryID    uuid.UUID           `json:"categoryId"`
	Technologies  []TechnologyInput   `json:"technologies,omitempty"`
	Results       []ResultInput       `json:"results,omitempty"`
	Testimonial   *TestimonialInput   `json:"testimonial,omitempty"`
	ContentBlocks []ContentBlockInput `json:"contentBlocks,omitempty"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 200),
		),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Challenge, validation.Required.Error("challenge is required")),
		validation.Field(&r.Solution, validation.Required.Error("solution is required")),
		validation.Field(&r.Status, validation.In(StatusPlanning, StatusActive, StatusCompleted, StatusOnHold)),
		validation.Field(&r.CategoryID, validation.Required.Error("categoryId is required")),
		validation.Field(&r.Technologies),
		validation.Field(&r.Results),
		validation.Field(&r.Testimonial),
		validation.Field(&r.ContentBlocks),
	)
}

func (r *CreateProjectRequest) ToEntity() *Project {
	status := r.Status
	if status == "" {
		status = StatusPlanning
	}

	p := &Project{
		Title:         r.Title,
		TitleAr:       r.TitleAr,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
		Challenge:     r.Challenge,
		ChallengeAr:   r.ChallengeAr,
		Solution:      r.Solution,
		SolutionAr:    r.SolutionAr,
		HeaderImage:   r.HeaderImage,
		Timeline:      r.Timeline,
		TeamSize:      r.TeamSize,
		Status:        status,
		CategoryID:    r.CategoryID,
	}
	for i := range r.Technologies {
		p.Technologies = append(p.Technologies, r.Technologies[i].ToEntity())
	}
	for i := range r.Results {
		p.Results = append(p.Results, r.Results[i].ToEntity())
	}
	if r.Testimonial != nil && !r.Testimonial.IsEmpty() {
		t := r.Testimonial.ToEntity()
		p.Testimonial = &t
	}
	for i := range r.ContentBlocks {
		p.ContentBlocks = append(p.ContentBlocks, r.ContentBlocks[i].ToEntity())
	}
	return p
}

// UpdateProjectRequest - PUT /admin/projects/:id. Collection fields use
// pointer-to-slice so an explicit empty list (replace with nothing) is
// distinguishable from an absent field (leave untouched).
type UpdateProjectRequest struct {
	Title         *string              `json:"title,omitempty"`
	TitleAr       *string              `json:"titleAr,omitempty"`
	Description   *string              `json:"description,omitempty"`
	DescriptionAr *string              `json:"descriptionAr,omitempty"`
	Challenge     *string              `json:"challenge,omitempty"`
	ChallengeAr   *string              `json:"challengeAr,omitempty"`
	Solution      *string              `json:"solution,omitempty"`
	SolutionAr    *string              `json:"solutionAr,omitempty"`
	HeaderImage   *string              `json:"headerImage,omitempty"`
	Timeline      *string              `json:"timeline,omitempty"`
	TeamSize      *string              `json:"teamSize,omitempty"`
	Status        *string              `json:"status,omitempty"`
	CategoryID    *uuid.UUID           `json:"categoryId,omitempty"`
	Technologies  *[]TechnologyInput   `json:"technologies,omitempty"`
	Results       *[]ResultInput       `json:"results,omitempty"`
	Testimonial   *TestimonialInput    `json:"testimonial,omitempty"`
	ContentBlocks *[]ContentBlockInput `json:"contentBlocks,omitempty"`
}

func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(2, 200)),
		validation.Field(&r.Status, validation.In(StatusPlanning, StatusActive, StatusCompleted, StatusOnHold)),
		validation.Field(&r.Technologies),
		validation.Field(&r.Results),
		validation.Field(&r.Testimonial),
		validation.Field(&r.ContentBlocks),
	)
}

// ApplyToEntity copies supplied scalar fields onto the project. The
// owned collections are handled by the service's replace/upsert calls,
// not here.
func (r *UpdateProjectRequest) ApplyToEntity(p *Project) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.TitleAr != nil {
		p.TitleAr = r.TitleAr
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.DescriptionAr != nil {
		p.DescriptionAr = r.DescriptionAr
	}
	if r.Challenge != nil {
		p.Challenge = *r.Challenge
	}
	if r.ChallengeAr != nil {
		p.ChallengeAr = r.ChallengeAr
	}
	if r.Solution != nil {
		p.Solution = *r.Solution
	}
	if r.SolutionAr != nil {
		p.SolutionAr = r.SolutionAr
	}
	if r.HeaderImage != nil {
		p.HeaderImage = r.HeaderImage
	}
	if r.Timeline != nil {
		p.Timeline = r.Timeline
	}
	if r.TeamSize != nil {
		p.TeamSize = r.TeamSize
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.CategoryID != nil {
		p.CategoryID = *r.CategoryID
	}
}

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusClosed   = "closed"
	StatusDraft    = "draft"

	// StatusAll disables the status filter on list.
	StatusAll = "all"
)

// Job is a career posting. Requirements and benefits are whole-list
// bilingual fields: the Arabic variant is a complete alternate list,
// never merged per element with the base list.
type Job struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	Title               string     `json:"title" db:"title"`
	TitleAr             *string    `json:"titleAr,omitempty" db:"title_ar"`
	Department          string     `json:"department" db:"department"`
	DepartmentAr        *string    `json:"departmentAr,omitempty" db:"department_ar"`
	Location            string     `json:"location" db:"location"`
	LocationAr          *string    `json:"locationAr,omitempty" db:"location_ar"`
	Type                string     `json:"type" db:"type"`
	TypeAr              *string    `json:"typeAr,omitempty" db:"type_ar"`
	Experience          *string    `json:"experience,omitempty" db:"experience"`
	ExperienceAr        *string    `json:"experienceAr,omitempty" db:"experience_ar"`
	Description         string     `json:"description" db:"description"`
	DescriptionAr       *string    `json:"descriptionAr,omitempty" db:"description_ar"`
	Salary              *string    `json:"salary,omitempty" db:"salary"`
	SalaryAr            *string    `json:"salaryAr,omitempty" db:"salary_ar"`
	Team                *string    `json:"team,omitempty" db:"team"`
	TeamAr              *string    `json:"teamAr,omitempty" db:"team_ar"`
	Requirements        []string   `json:"requirements" db:"requirements"`
	RequirementsAr      []string   `json:"requirementsAr,omitempty" db:"requirements_ar"`
	Benefits            []string   `json:"benefits" db:"benefits"`
	BenefitsAr          []string   `json:"benefitsAr,omitempty" db:"benefits_ar"`
	Status              string     `json:"status" db:"status"`
	ApplicationDeadline *time.Time `json:"applicationDeadline" db:"application_deadline"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time  `json:"updatedAt" db:"updated_at"`
}

type JobResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Department          string     `json:"department"`
	Location            string     `json:"location"`
	Type                string     `json:"type"`
	Experience          string     `json:"experience,omitempty"`
	Description         string     `json:"description"`
	Salary              string     `json:"salary,omitempty"`
	Team                string     `json:"team,omitempty"`
	Requirements        []string   `json:"requirements"`
	Benefits            []string   `json:"benefits"`
	Status              string     `json:"status"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Localize resolves scalar fields per the usual non-empty rule and the
// list fields wholesale: a present non-empty Arabic list wins entirely,
// otherwise the base list is used as-is.
func (j *Job) Localize(loc i18n.Locale) *JobResponse {
	if j == nil {
		return nil
	}
	resp := &JobResponse{
		ID:                  j.ID,
		Title:               i18n.Resolve(loc, j.Title, j.TitleAr),
		Department:          i18n.Resolve(loc, j.Department, j.DepartmentAr),
		Location:            i18n.Resolve(loc, j.Location, j.LocationAr),
		Type:                i18n.Resolve(loc, j.Type, j.TypeAr),
		Description:         i18n.Resolve(loc, j.Description, j.DescriptionAr),
		Requirements:        i18n.ResolveList(loc, j.Requirements, j.RequirementsAr),
		Benefits:            i18n.ResolveList(loc, j.Benefits, j.BenefitsAr),
		Status:              j.Status,
		ApplicationDeadline: j.ApplicationDeadline,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
	if j.Experience != nil {
		resp.Experience = i18n.Resolve(loc, *j.Experience, j.ExperienceAr)
	}
	if j.Salary != nil {
		resp.Salary = i18n.Resolve(loc, *j.Salary, j.SalaryAr)
	}
	if j.Team != nil {
		resp.Team = i18n.Resolve(loc, *j.Team, j.TeamAr)
	}
	return resp
}

// LocalizeJobs maps Localize over a slice.
func LocalizeJobs(jobs []Job, loc i18n.Locale) []*JobResponse {
	out := make([]*JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, jobs[i].Localize(loc))
	}
	return out
}

// Deadline is the tri-state applicationDeadline payload field: absent,
// explicit null, or an RFC 3339 datetime string. An empty string
// normalizes to null before persistence.
type Deadline struct {
	Present bool
	Value   *time.Time
}

func (d *Deadline) UnmarshalJSON(data []byte) error {
	d.Present = true
	d.Value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("applicationDeadline must be a datetime string or null: %w", err)
	}
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid applicationDeadline: %w", err)
	}
	d.Value = &t
	return nil
}

func (d Deadline) MarshalJSON() ([]byte, error) {
	if d.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}

// CreateJobRequest - POST /admin/jobs.
type CreateJobRequest struct {
	Title               string   `json:"title"`
	TitleAr             *string  `json:"titleAr,omitempty"`
	Department          string   `json:"department"`
	DepartmentAr        *string  `json:"departmentAr,omitempty"`
	Location            string   `json:"location"`
	LocationAr          *string  `json:"locationAr,omitempty"`
	Type                string   `json:"type"`
	TypeAr              *string  `json:"typeAr,omitempty"`
	Experience          *string  `json:"experience,omitempty"`
	ExperienceAr        *string  `json:"experienceAr,omitempty"`
	Description         string   `json:"description"`
	DescriptionAr       *string  `json:"descriptionAr,omitempty"`
	Salary              *string  `json:"salary,omitempty"`
	SalaryAr            *string  `json:"salaryAr,omitempty"`
	Team                *string  `json:"team,omitempty"`
	TeamAr              *string  `json:"teamAr,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
	RequirementsAr      []string `json:"requirementsAr,omitempty"`
	Benefits            []string `json:"benefits,omitempty"`
	BenefitsAr          []string `json:"benefitsAr,omitempty"`
	Status              string   `json:"status"`
	ApplicationDeadline Deadline `json:"applicationDeadline"`
}

func (r CreateJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 200),
		),
		validation.Field(&r.Department, validation.Required.Error("department is required")),
		validation.Field(&r.Location, validation.Required.Error("location is required")),
		validation.Field(&r.Type, validation.Required.Error("type is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Status, validation.In(StatusActive, StatusInactive, StatusClosed, StatusDraft)),
	)
}

func (r *CreateJobRequest) ToEntity() *Job {
	status := r.Status
	if status == "" {
		status = StatusDraft
	}
	requirements := r.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	benefits := r.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return &Job{
		Title:               r.Title,
		TitleAr:             r.TitleAr,
		Department:          r.Department,
		DepartmentAr:        r.DepartmentAr,
		Location:            r.Location,
		LocationAr:          r.LocationAr,
		Type:                r.Type,
		TypeAr:              r.TypeAr,
		Experience:          r.Experience,
		ExperienceAr:        r.ExperienceAr,
		Description:         r.Description,
		DescriptionAr:       r.DescriptionAr,
		Salary:              r.Salary,
		SalaryAr:            r.SalaryAr,
		Team:                r.Team,
		TeamAr:              r.TeamAr,
		Requirements:        requirements,
		RequirementsAr:      r.RequirementsAr,
		Benefits:            benefits,
		BenefitsAr:          r.BenefitsAr,
		Status:              status,
		ApplicationDeadline: r.ApplicationDeadline.Value,
	}
}

// UpdateJobRequest - PUT /admin/jobs/:id. List fields use
// pointer-to-slice so a supplied empty list is distinguishable from an
// absent field.
type UpdateJobRequest struct {
	Title               *string   `json:"title,omitempty"`
	TitleAr             *string   `json:"titleAr,omitempty"`
	Department          *string   `json:"department,omitempty"`
	DepartmentAr        *string   `json:"departmentAr,omitempty"`
	Location            *string   `json:"location,omitempty"`
	LocationAr          *string   `json:"locationAr,omitempty"`
	Type                *string   `json:"type,omitempty"`
	TypeAr              *string   `json:"typeAr,omitempty"`
	Experience          *string   `json:"experience,omitempty"`
	ExperienceAr        *string   `json:"experienceAr,omitempty"`
	Description         *string   `json:"description,omitempty"`
	DescriptionAr       *string   `json:"descriptionAr,omitempty"`
	Salary              *string   `json:"salary,omitempty"`
	SalaryAr            *string   `json:"salaryAr,omitempty"`
	Team                *string   `json:"team,omitempty"`
	TeamAr              *string   `json:"teamAr,omitempty"`
	Requirements        *[]string `json:"requirements,omitempty"`
	RequirementsAr      *[]string `json:"requirementsAr,omitempty"`
	Benefits            *[]string `json:"benefits,omitempty"`
	BenefitsAr          *[]string `json:"benefitsAr,omitempty"`
	Status              *string   `json:"status,omitempty"`
	ApplicationDeadline Deadline  `json:"applicationDeadline"`
}

func (r UpdateJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(2, 200)),
		validation.Field(&r.Status, validation.In(StatusActive, StatusInactive, StatusClosed, StatusDraft)),
	)
}

func (r *UpdateJobRequest) ApplyToEntity(j *Job) {
	if r.Title != nil {
		j.Title = *r.Title
	}
	if r.TitleAr != nil {
		j.TitleAr = r.TitleAr
	}
	if r.Department != nil {
		j.Department = *r.Department
	}
	if r.DepartmentAr != nil {
		j.DepartmentAr = r.DepartmentAr
	}
	if r.Location != nil {
		j.Location = *r.Location
	}
	if r.LocationAr != nil {
		j.LocationAr = r.LocationAr
	}
	if r.Type != nil {
		j.Type = *r.Type
	}
	if r.TypeAr != nil {
		j.TypeAr = r.TypeAr
	}
	if r.Experience != nil {
		j.Experience = r.Experience
	}
	if r.ExperienceAr != nil {
		j.ExperienceAr = r.ExperienceAr
	}
	if r.Description != nil {
		j.Description = *r.Description
	}
	if r.DescriptionAr != nil {
		j.DescriptionAr = r.DescriptionAr
	}
	if r.Salary != nil {
		j.Salary = r.Salary
	}
	if r.SalaryAr != nil {
		j.SalaryAr = r.SalaryAr
	}
	if r.Team != nil {
		j.Team = r.Team
	}
	if r.TeamAr != nil {
		j.TeamAr = r.TeamAr
	}
	if r.Requirements != nil {
		j.Requirements = *r.Requirements
	}
	if r.RequirementsAr != nil {
		j.RequirementsAr = *r.RequirementsAr
	}
	if r.Benefits != nil {
		j.Benefits = *r.Benefits
	}
	if r.BenefitsAr != nil {
		j.BenefitsAr = *r.BenefitsAr
	}
	if r.Status != nil {
		j.Status = *r.Status
	}
	if r.ApplicationDeadline.Present {
		j.ApplicationDeadline = r.ApplicationDeadline.Value
	}
}

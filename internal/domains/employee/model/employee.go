package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Employee is a time-tracking participant, not a public profile.
type Employee struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Position  *string   `json:"position,omitempty" db:"position"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// TimeEntry is one logged block of work. Hours and minutes are stored
// as entered; totals are derived at read time, never persisted.
type TimeEntry struct {
	ID          uuid.UUID `json:"id" db:"id"`
	EmployeeID  uuid.UUID `json:"employeeId" db:"employee_id"`
	Date        time.Time `json:"date" db:"date"`
	Hours       int       `json:"hours" db:"hours"`
	Minutes     int       `json:"minutes" db:"minutes"`
	Project     string    `json:"project" db:"project"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// TotalMinutes flattens the entry to a single unit for aggregation.
func (e *TimeEntry) TotalMinutes() int {
	return e.Hours*60 + e.Minutes
}

// WeeklyTotal is an ISO-week rollup.
type WeeklyTotal struct {
	Year    int `json:"year"`
	Week    int `json:"week"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// MonthlyTotal is a calendar-month rollup.
type MonthlyTotal struct {
	Year    int `json:"year"`
	Month   int `json:"month"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Rollups carries both derived aggregations for one employee.
type Rollups struct {
	Weekly  []WeeklyTotal  `json:"weekly"`
	Monthly []MonthlyTotal `json:"monthly"`
}

// CreateEmployeeRequest - POST /admin/employees.
type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Position *string `json:"position,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
	)
}

func (r *CreateEmployeeRequest) ToEntity() *Employee {
	return &Employee{
		Name:     r.Name,
		Email:    r.Email,
		Position: r.Position,
	}
}

// CreateTimeEntryRequest - POST /admin/employees/:id/time-entries.
type CreateTimeEntryRequest struct {
	Date        string  `json:"date"`
	Hours       int     `json:"hours"`
	Minutes     int     `json:"minutes"`
	Project     string  `json:"project"`
	Description *string `json:"description,omitempty"`
}

func (r CreateTimeEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Date("2006-01-02").Error("date must be YYYY-MM-DD"),
		),
		validation.Field(&r.Hours, validation.Min(0), validation.Max(24)),
		validation.Field(&r.Minutes, validation.Min(0), validation.Max(59)),
		validation.Field(&r.Project, validation.Required.Error("project is required")),
	)
}

func (r *CreateTimeEntryRequest) ToEntity(employeeID uuid.UUID) *TimeEntry {
	// Validate already checked the format.
	date, _ := time.Parse("2006-01-02", r.Date)
	return &TimeEntry{
		EmployeeID:  employeeID,
		Date:        date,
		Hours:       r.Hours,
		Minutes:     r.Minutes,
		Project:     r.Project,
		Description: r.Description,
	}
}

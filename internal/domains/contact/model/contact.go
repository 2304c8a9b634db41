package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
	StatusClosed  = "closed"

	// StatusAll disables the status filter on list.
	StatusAll = "all"
)

// ContactMessage is a user-submitted inquiry. No bilingual fields, the
// content is whatever language the visitor wrote in.
type ContactMessage struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Email      string     `json:"email" db:"email"`
	Company    *string    `json:"company,omitempty" db:"company"`
	Message    string     `json:"message" db:"message"`
	Service    string     `json:"service" db:"service"`
	Budget     *string    `json:"budget,omitempty" db:"budget"`
	Status     string     `json:"status" db:"status"`
	NotifiedAt *time.Time `json:"notifiedAt,omitempty" db:"notified_at"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}

// CreateContactRequest - POST /contact (public).
type CreateContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company,omitempty"`
	Message string  `json:"message"`
	Service string  `json:"service"`
	Budget  *string `json:"budget,omitempty"`
}

func (r CreateContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(10, 5000),
		),
		validation.Field(&r.Service, validation.Required.Error("service is required")),
	)
}

func (r *CreateContactRequest) ToEntity() *ContactMessage {
	return &ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Message: r.Message,
		Service: r.Service,
		Budget:  r.Budget,
		Status:  StatusNew,
	}
}

// UpdateStatusRequest - PATCH /admin/contact/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusNew, StatusRead, StatusReplied, StatusClosed),
		),
	)
}

// ListFilter narrows the admin inbox view.
type ListFilter struct {
	Page   int
	Limit  int
	Status string
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/model"
)

// RepositoryInterface is the employee and time entry data-access
// contract.
type RepositoryInterface interface {
	GetAllEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployeeByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	CreateEmployee(ctx context.Context, e *model.Employee) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error

	// ListEntries returns every entry for the employee ordered by date
	// ascending.
	ListEntries(ctx context.Context, employeeID uuid.UUID) ([]model.TimeEntry, error)
	CreateEntry(ctx context.Context, e *model.TimeEntry) (*model.TimeEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/repository"
)

type ServiceInterface interface {
	GetAllEmployees(ctx context.Context) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, req *model.CreateEmployeeRequest) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error

	ListEntries(ctx context.Context, employeeID uuid.UUID) ([]model.TimeEntry, error)
	CreateEntry(ctx context.Context, employeeID uuid.UUID, req *model.CreateTimeEntryRequest) (*model.TimeEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// Rollups derives weekly (ISO week) and monthly totals from the
	// employee's entries. Nothing is stored.
	Rollups(ctx context.Context, employeeID uuid.UUID) (*model.Rollups, error)
}

type employeeService struct {
	repo repository.RepositoryInterface
}

func NewEmployeeService(repo repository.RepositoryInterface) ServiceInterface {
	return &employeeService{repo: repo}
}

func (s *employeeService) GetAllEmployees(ctx context.Context) ([]model.Employee, error) {
	return s.repo.GetAllEmployees(ctx)
}

func (s *employeeService) CreateEmployee(ctx context.Context, req *model.CreateEmployeeRequest) (*model.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.CreateEmployee(ctx, req.ToEntity())
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEmployee(ctx, id)
}

func (s *employeeService) ListEntries(ctx context.Context, employeeID uuid.UUID) ([]model.TimeEntry, error) {
	if _, err := s.repo.GetEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.repo.ListEntries(ctx, employeeID)
}

func (s *employeeService) CreateEntry(ctx context.Context, employeeID uuid.UUID, req *model.CreateTimeEntryRequest) (*model.TimeEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.repo.CreateEntry(ctx, req.ToEntity(employeeID))
}

func (s *employeeService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, id)
}

func (s *employeeService) Rollups(ctx context.Context, employeeID uuid.UUID) (*model.Rollups, error) {
	if _, err := s.repo.GetEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListEntries(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return aggregate(entries), nil
}

type periodKey struct {
	year   int
	period int
}

// aggregate sums entry durations into ISO-week and calendar-month
// buckets, carrying overflow minutes into hours.
func aggregate(entries []model.TimeEntry) *model.Rollups {
	weekly := make(map[periodKey]int)
	monthly := make(map[periodKey]int)

	for i := range entries {
		minutes := entries[i].TotalMinutes()
		y, w := entries[i].Date.ISOWeek()
		weekly[periodKey{y, w}] += minutes
		monthly[periodKey{entries[i].Date.Year(), int(entries[i].Date.Month())}] += minutes
	}

	out := &model.Rollups{
		Weekly:  make([]model.WeeklyTotal, 0, len(weekly)),
		Monthly: make([]model.MonthlyTotal, 0, len(monthly)),
	}
	for k, minutes := range weekly {
		out.Weekly = append(out.Weekly, model.WeeklyTotal{
			Year: k.year, Week: k.period, Hours: minutes / 60, Minutes: minutes % 60,
		})
	}
	for k, minutes := range monthly {
		out.Monthly = append(out.Monthly, model.MonthlyTotal{
			Year: k.year, Month: k.period, Hours: minutes / 60, Minutes: minutes % 60,
		})
	}

	sort.Slice(out.Weekly, func(i, j int) bool {
		if out.Weekly[i].Year != out.Weekly[j].Year {
			return out.Weekly[i].Year < out.Weekly[j].Year
		}
		return out.Weekly[i].Week < out.Weekly[j].Week
	})
	sort.Slice(out.Monthly, func(i, j int) bool {
		if out.Monthly[i].Year != out.Monthly[j].Year {
			return out.Monthly[i].Year < out.Monthly[j].Year
		}
		return out.Monthly[i].Month < out.Monthly[j].Month
	})
	return out
}

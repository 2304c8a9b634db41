package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/model"
)

type fakeEmployeeRepo struct {
	employees map[uuid.UUID]*model.Employee
	entries   map[uuid.UUID][]model.TimeEntry
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[uuid.UUID]*model.Employee),
		entries:   make(map[uuid.UUID][]model.TimeEntry),
	}
}

func (f *fakeEmployeeRepo) GetAllEmployees(ctx context.Context) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetEmployeeByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, model.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) CreateEmployee(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	for _, existing := range f.employees {
		if existing.Email == e.Email {
			return nil, model.ErrEmailTaken
		}
	}
	copied := *e
	copied.ID = uuid.New()
	f.employees[copied.ID] = &copied
	return &copied, nil
}

func (f *fakeEmployeeRepo) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.employees[id]; !ok {
		return model.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ListEntries(ctx context.Context, employeeID uuid.UUID) ([]model.TimeEntry, error) {
	return f.entries[employeeID], nil
}

func (f *fakeEmployeeRepo) CreateEntry(ctx context.Context, e *model.TimeEntry) (*model.TimeEntry, error) {
	copied := *e
	copied.ID = uuid.New()
	f.entries[e.EmployeeID] = append(f.entries[e.EmployeeID], copied)
	return &copied, nil
}

func (f *fakeEmployeeRepo) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	for emp, entries := range f.entries {
		for i := range entries {
			if entries[i].ID == id {
				f.entries[emp] = append(entries[:i], entries[i+1:]...)
				return nil
			}
		}
	}
	return model.ErrEntryNotFound
}

func TestRollups(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	emp, err := svc.CreateEmployee(ctx, &model.CreateEmployeeRequest{Name: "Lina", Email: "lina@tasami.co"})
	require.NoError(t, err)

	// two entries in the same ISO week (Mon 2026-01-05 and Tue 2026-01-06),
	// one in the next week, all in January
	logs := []struct {
		date    string
		hours   int
		minutes int
	}{
		{"2026-01-05", 7, 30},
		{"2026-01-06", 1, 45},
		{"2026-01-12", 8, 0},
	}
	for _, l := range logs {
		_, err := svc.CreateEntry(ctx, emp.ID, &model.CreateTimeEntryRequest{
			Date: l.date, Hours: l.hours, Minutes: l.minutes, Project: "website",
		})
		require.NoError(t, err)
	}

	rollups, err := svc.Rollups(ctx, emp.ID)
	require.NoError(t, err)

	require.Len(t, rollups.Weekly, 2)
	// 7h30 + 1h45 = 9h15
	assert.Equal(t, model.WeeklyTotal{Year: 2026, Week: 2, Hours: 9, Minutes: 15}, rollups.Weekly[0])
	assert.Equal(t, model.WeeklyTotal{Year: 2026, Week: 3, Hours: 8, Minutes: 0}, rollups.Weekly[1])

	require.Len(t, rollups.Monthly, 1)
	assert.Equal(t, model.MonthlyTotal{Year: 2026, Month: 1, Hours: 17, Minutes: 15}, rollups.Monthly[0])
}

func TestRollupsUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	_, err := svc.Rollups(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrEmployeeNotFound)
}

func TestEntryValidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	emp, err := svc.CreateEmployee(ctx, &model.CreateEmployeeRequest{Name: "Lina", Email: "lina@tasami.co"})
	require.NoError(t, err)

	_, err = svc.CreateEntry(ctx, emp.ID, &model.CreateTimeEntryRequest{
		Date: "2026-01-05", Hours: 25, Project: "website",
	})
	require.Error(t, err, "hours above 24 must fail")

	_, err = svc.CreateEntry(ctx, emp.ID, &model.CreateTimeEntryRequest{
		Date: "2026-01-05", Hours: 8, Minutes: 75, Project: "website",
	})
	require.Error(t, err, "minutes above 59 must fail")

	entry, err := svc.CreateEntry(ctx, emp.ID, &model.CreateTimeEntryRequest{
		Date: "2026-01-05", Hours: 8, Minutes: 30, Project: "website",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), entry.Date)
	assert.Equal(t, 510, entry.TotalMinutes())
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/model"
)

type fakeFinanceRepo struct {
	entries []model.Entry
}

func (f *fakeFinanceRepo) List(ctx context.Context, from, to time.Time) ([]model.Entry, error) {
	var out []model.Entry
	for _, e := range f.entries {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !e.Date.Before(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeFinanceRepo) Create(ctx context.Context, e *model.Entry) (*model.Entry, error) {
	copied := *e
	copied.ID = uuid.New()
	f.entries = append(f.entries, copied)
	return &copied, nil
}

func (f *fakeFinanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return model.ErrEntryNotFound
}

func TestMonthlySummaries(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFinanceRepo{}
	svc := NewFinanceService(repo)

	ledger := []struct {
		entryType string
		amount    string
		date      string
	}{
		{model.TypeIncome, "10000.50", "2026-01-10"},
		{model.TypeExpense, "2500.25", "2026-01-15"},
		{model.TypeIncome, "8000.00", "2026-02-01"},
	}
	for _, l := range ledger {
		_, err := svc.Create(ctx, &model.CreateEntryRequest{
			Type: l.entryType, Amount: l.amount, Category: "consulting", Date: l.date,
		})
		require.NoError(t, err)
	}

	summaries, err := svc.MonthlySummaries(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	jan := summaries[0]
	assert.Equal(t, 2026, jan.Year)
	assert.Equal(t, 1, jan.Month)
	assert.True(t, jan.Income.Equal(decimal.RequireFromString("10000.50")))
	assert.True(t, jan.Expenses.Equal(decimal.RequireFromString("2500.25")))
	assert.True(t, jan.Net.Equal(decimal.RequireFromString("7500.25")))

	feb := summaries[1]
	assert.True(t, feb.Net.Equal(decimal.RequireFromString("8000.00")))
}

func TestCreateRejectsBadAmount(t *testing.T) {
	svc := NewFinanceService(&fakeFinanceRepo{})

	_, err := svc.Create(context.Background(), &model.CreateEntryRequest{
		Type: model.TypeIncome, Amount: "not-a-number", Category: "consulting", Date: "2026-01-10",
	})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)

	_, err = svc.Create(context.Background(), &model.CreateEntryRequest{
		Type: model.TypeIncome, Amount: "-5", Category: "consulting", Date: "2026-01-10",
	})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

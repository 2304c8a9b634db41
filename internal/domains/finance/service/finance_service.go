package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/repository"
)

type ServiceInterface interface {
	List(ctx context.Context, from, to time.Time) ([]model.Entry, error)
	Create(ctx context.Context, req *model.CreateEntryRequest) (*model.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// MonthlySummaries derives per-month income/expense/net totals from
	// the ledger. Nothing is stored.
	MonthlySummaries(ctx context.Context, from, to time.Time) ([]model.MonthlySummary, error)
	Export(ctx context.Context, from, to time.Time) (*excelize.File, error)
}

type financeService struct {
	repo repository.RepositoryInterface
}

func NewFinanceService(repo repository.RepositoryInterface) ServiceInterface {
	return &financeService{repo: repo}
}

func (s *financeService) List(ctx context.Context, from, to time.Time) ([]model.Entry, error) {
	return s.repo.List(ctx, from, to)
}

func (s *financeService) Create(ctx context.Context, req *model.CreateEntryRequest) (*model.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry, err := req.ToEntity()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, entry)
}

func (s *financeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

type monthKey struct {
	year  int
	month int
}

func (s *financeService) MonthlySummaries(ctx context.Context, from, to time.Time) ([]model.MonthlySummary, error) {
	entries, err := s.repo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets := make(map[monthKey]*model.MonthlySummary)
	for i := range entries {
		k := monthKey{entries[i].Date.Year(), int(entries[i].Date.Month())}
		sum, ok := buckets[k]
		if !ok {
			sum = &model.MonthlySummary{
				Year: k.year, Month: k.month,
				Income: decimal.Zero, Expenses: decimal.Zero, Net: decimal.Zero,
			}
			buckets[k] = sum
		}
		switch entries[i].Type {
		case model.TypeIncome:
			sum.Income = sum.Income.Add(entries[i].Amount)
		case model.TypeExpense:
			sum.Expenses = sum.Expenses.Add(entries[i].Amount)
		}
	}

	out := make([]model.MonthlySummary, 0, len(buckets))
	for _, sum := range buckets {
		sum.Net = sum.Income.Sub(sum.Expenses)
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

// Export builds an xlsx workbook with the raw ledger and a monthly
// summary sheet.
func (s *financeService) Export(ctx context.Context, from, to time.Time) (*excelize.File, error) {
	entries, err := s.repo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	summaries, err := s.MonthlySummaries(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	entriesSheet := "Entries"
	f.SetSheetName("Sheet1", entriesSheet)

	headers := []string{"Date", "Type", "Category", "Amount", "Currency", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(entriesSheet, cell, h)
	}
	for row, e := range entries {
		desc := ""
		if e.Description != nil {
			desc = *e.Description
		}
		values := []interface{}{
			e.Date.Format("2006-01-02"), e.Type, e.Category,
			e.Amount.String(), e.Currency, desc,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build export cell: %w", err)
			}
			f.SetCellValue(entriesSheet, cell, v)
		}
	}

	summarySheet := "Monthly Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to add summary sheet: %w", err)
	}
	sumHeaders := []string{"Year", "Month", "Income", "Expenses", "Net"}
	for i, h := range sumHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, h)
	}
	for row, sum := range summaries {
		values := []interface{}{
			sum.Year, sum.Month, sum.Income.String(), sum.Expenses.String(), sum.Net.String(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build summary cell: %w", err)
			}
			f.SetCellValue(summarySheet, cell, v)
		}
	}

	return f, nil
}

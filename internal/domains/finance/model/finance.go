package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Entry is one ledger line. Amounts are exact decimals, never floats.
type Entry struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Type        string          `json:"type" db:"type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Currency    string          `json:"currency" db:"currency"`
	Category    string          `json:"category" db:"category"`
	Description *string         `json:"description,omitempty" db:"description"`
	Date        time.Time       `json:"date" db:"date"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// MonthlySummary is a derived income/expense/net triple for one month.
type MonthlySummary struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// CreateEntryRequest - POST /admin/finance/entries.
type CreateEntryRequest struct {
	Type        string  `json:"type"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
}

func (r CreateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(TypeIncome, TypeExpense),
		),
		validation.Field(&r.Amount, validation.Required.Error("amount is required")),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Date("2006-01-02").Error("date must be YYYY-MM-DD"),
		),
	)
}

// ToEntity parses the amount; a malformed amount is a validation-level
// failure surfaced by the caller.
func (r *CreateEntryRequest) ToEntity() (*Entry, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	currency := r.Currency
	if currency == "" {
		currency = "USD"
	}
	date, _ := time.Parse("2006-01-02", r.Date)
	return &Entry{
		Type:        r.Type,
		Amount:      amount,
		Currency:    currency,
		Category:    r.Category,
		Description: r.Description,
		Date:        date,
	}, nil
}

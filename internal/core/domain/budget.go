package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps a category's spend for a single month. At most one budget may
// exist per (category, month) pair; only year and month of Month are
// significant, the day-of-month is irrelevant.
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Month      time.Time       `json:"month"`
}

// CoversMonth reports whether the budget applies to the given reference month.
func (b Budget) CoversMonth(month time.Time) bool {
	return SameMonth(b.Month, month)
}

// NormalizeMonth truncates a date to the first instant of its month, so that
// budgets stored for the same month always compare equal.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

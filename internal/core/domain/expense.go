package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceInterval is the repeat step of a recurring expense.
type RecurrenceInterval string

const (
	Daily   RecurrenceInterval = "daily"
	Weekly  RecurrenceInterval = "weekly"
	Monthly RecurrenceInterval = "monthly"
	Yearly  RecurrenceInterval = "yearly"
)

// Next returns the occurrence following t for this interval, using calendar
// arithmetic (a monthly step lands on the same day-of-month where it exists).
func (r RecurrenceInterval) Next(t time.Time) time.Time {
	switch r {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Monthly:
		return t.AddDate(0, 1, 0)
	case Yearly:
		return t.AddDate(1, 0, 0)
	}
	return t
}

// IsValid reports whether the interval is one of the known values.
func (r RecurrenceInterval) IsValid() bool {
	switch r {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Expense is a dated spend record. Recurring expenses are expanded into one
// independently payable instance per occurrence; RecurrenceInterval is set iff
// IsRecurring is true, and IsPaid is only meaningful for recurring instances.
type Expense struct {
	ExpenseID          string             `json:"expenseID"`
	Name               string             `json:"name"`
	Amount             decimal.Decimal    `json:"amount"`
	Date               time.Time          `json:"date"`
	Notes              string             `json:"notes"`
	CategoryID         string             `json:"categoryID"`
	IsRecurring        bool               `json:"isRecurring"`
	RecurrenceInterval RecurrenceInterval `json:"recurrenceInterval,omitempty"`
	IsFixed            bool               `json:"isFixed"`
	IsPaid             bool               `json:"isPaid"`
	PaymentMethodID    string             `json:"paymentMethodID"` // optional
	AutoPay            bool               `json:"autoPay"`
}

// CountsTowardMonth reports whether the expense qualifies for the given
// reference month's totals: its date falls in the same year+month, and it is
// either non-recurring or a recurring instance that has been paid. An unpaid
// recurring expense must not inflate monthly totals or budget progress.
func (e Expense) CountsTowardMonth(month time.Time) bool {
	if !SameMonth(e.Date, month) {
		return false
	}
	return !e.IsRecurring || e.IsPaid
}

// SameMonth reports whether a and b fall in the same calendar year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

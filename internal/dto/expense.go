package dto

import (
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record a single expense.
type CreateExpenseRequest struct {
	Name            string          `json:"name" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Date            time.Time       `json:"date"`
	Notes           string          `json:"notes"`
	CategoryID      string          `json:"categoryID" binding:"required"`
	IsFixed         bool            `json:"isFixed"`
	PaymentMethodID string          `json:"paymentMethodID"`
	AutoPay         bool            `json:"autoPay"`
}

// CreateRecurringExpenseRequest expands into one expense instance per
// occurrence of the interval between StartDate and EndDate inclusive.
type CreateRecurringExpenseRequest struct {
	Name            string                    `json:"name" binding:"required"`
	Amount          decimal.Decimal           `json:"amount" binding:"required"`
	StartDate       time.Time                 `json:"startDate" binding:"required"`
	EndDate         time.Time                 `json:"endDate" binding:"required"`
	Interval        domain.RecurrenceInterval `json:"interval" binding:"required,oneof=daily weekly monthly yearly"`
	Notes           string                    `json:"notes"`
	CategoryID      string                    `json:"categoryID" binding:"required"`
	IsFixed         bool                      `json:"isFixed"`
	PaymentMethodID string                    `json:"paymentMethodID"`
	AutoPay         bool                      `json:"autoPay"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
type UpdateExpenseRequest struct {
	Name            *string          `json:"name"`
	Amount          *decimal.Decimal `json:"amount"`
	Date            *time.Time       `json:"date"`
	Notes           *string          `json:"notes"`
	CategoryID      *string          `json:"categoryID"`
	IsFixed         *bool            `json:"isFixed"`
	PaymentMethodID *string          `json:"paymentMethodID"`
	AutoPay         *bool            `json:"autoPay"`
}

// ExpenseFilter narrows an expense listing. All fields are optional and
// combine with AND semantics.
type ExpenseFilter struct {
	Month      *time.Time
	Day        *time.Time
	CategoryID *string
	Recurring  *bool
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID          string                    `json:"expenseID"`
	Name               string                    `json:"name"`
	Amount             decimal.Decimal           `json:"amount"`
	Date               time.Time                 `json:"date"`
	Notes              string                    `json:"notes,omitempty"`
	CategoryID         string                    `json:"categoryID"`
	IsRecurring        bool                      `json:"isRecurring"`
	RecurrenceInterval domain.RecurrenceInterval `json:"recurrenceInterval,omitempty"`
	IsFixed            bool                      `json:"isFixed"`
	IsPaid             bool                      `json:"isPaid"`
	PaymentMethodID    string                    `json:"paymentMethodID,omitempty"`
	AutoPay            bool                      `json:"autoPay"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:          e.ExpenseID,
		Name:               e.Name,
		Amount:             e.Amount,
		Date:               e.Date,
		Notes:              e.Notes,
		CategoryID:         e.CategoryID,
		IsRecurring:        e.IsRecurring,
		RecurrenceInterval: e.RecurrenceInterval,
		IsFixed:            e.IsFixed,
		IsPaid:             e.IsPaid,
		PaymentMethodID:    e.PaymentMethodID,
		AutoPay:            e.AutoPay,
	}
}

// ToExpenseResponses converts a slice of expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, ToExpenseResponse(&expenses[i]))
	}
	return out
}

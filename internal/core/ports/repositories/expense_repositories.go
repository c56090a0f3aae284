package repositories

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expense documents.
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves the current snapshot of all expenses.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense documents.
type ExpenseWriter interface {
	// SaveExpense upserts an expense document.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense document.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepository combines read and write access to the expenses collection.
type ExpenseRepository interface {
	ExpenseReader
	ExpenseWriter
}

package services

import (
	"context"
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses.
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense by its unique identifier.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses narrowed by the filter, newest first.
	ListExpenses(ctx context.Context, filter dto.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expenses.
type ExpenseWriterSvc interface {
	// CreateExpense records a single expense and posts it to the ledger.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// CreateRecurringSeries expands a recurring expense into one instance per
	// occurrence between the start and end dates and persists them all.
	CreateRecurringSeries(ctx context.Context, req dto.CreateRecurringExpenseRequest) ([]domain.Expense, error)

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense together with its ledger posting.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpensePaymentSvc covers the paid flag of recurring expense instances.
type ExpensePaymentSvc interface {
	// MarkExpensePaid flips a recurring instance to paid so it starts
	// counting toward monthly totals and budget progress.
	MarkExpensePaid(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ApplyAutomaticPayments marks every auto-pay recurring instance whose
	// occurrence date is today as paid; returns how many were flipped.
	ApplyAutomaticPayments(ctx context.Context, now time.Time) (int, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	ExpensePaymentSvc
}

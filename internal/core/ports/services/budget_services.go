package services

import (
	"context"
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade is the category/budget aggregation engine: monthly
// per-category totals, budget progress ratios and spending trends, all
// derived from the expense snapshot with the recurring paid-gate applied.
type BudgetSvcFacade interface {
	// MonthlyExpensesByCategory groups the month's qualifying expenses by
	// category, sorted descending by total.
	MonthlyExpensesByCategory(ctx context.Context, month time.Time) ([]domain.CategorySpend, error)

	// TotalMonthlyExpenses sums the month's qualifying expenses.
	TotalMonthlyExpenses(ctx context.Context, month time.Time) (decimal.Decimal, error)

	// MonthlyTrend returns the qualifying totals of the most recent N months
	// including the current one, oldest to newest.
	MonthlyTrend(ctx context.Context, months int) ([]domain.MonthTotal, error)

	// BudgetProgress returns the unclamped spend-to-budget ratio for a
	// category and month, or 0 when no budget is set.
	BudgetProgress(ctx context.Context, categoryID string, month time.Time) (float64, error)

	// GetBudget retrieves the budget for a (category, month) pair, or
	// apperrors.ErrNotFound when none is set.
	GetBudget(ctx context.Context, categoryID string, month time.Time) (*domain.Budget, error)

	// SetBudget creates or updates the single budget of the pair.
	SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, error)

	// RemoveBudget deletes the budget of the pair; a no-op when none exists.
	RemoveBudget(ctx context.Context, categoryID string, month time.Time) error
}

// CategorySvcFacade manages expense categories.
type CategorySvcFacade interface {
	// GetCategoryByID retrieves a specific category by its unique identifier.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category unless expenses still reference it.
	DeleteCategory(ctx context.Context, categoryID string) error

	// EnsureDefaultCategories seeds the starter categories when the
	// collection is empty.
	EnsureDefaultCategories(ctx context.Context) error
}

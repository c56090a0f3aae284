package repositories

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
)

// CategoryRepository provides access to the categories collection.
type CategoryRepository interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the current snapshot of all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// SaveCategory upserts a category document.
	SaveCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category document.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// BudgetRepository provides access to the budgets collection.
type BudgetRepository interface {
	// ListBudgets retrieves the current snapshot of all budgets.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)

	// SaveBudget upserts a budget document.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget document.
	DeleteBudget(ctx context.Context, budgetID string) error
}

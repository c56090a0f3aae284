package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
	"github.com/shopspring/decimal"
)

// budgetService implements the category/budget aggregation engine: all
// figures are derived fresh from the expense snapshot on every call. Unpaid
// recurring expenses never count toward a month's totals.
type budgetService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepository
	categoryRepo portsrepo.CategoryRepository
	budgetRepo   portsrepo.BudgetRepository
}

// BudgetServiceOption is a functional option for configuring the budget service.
type BudgetServiceOption func(*budgetService)

// WithBudgetDiagnostics sets the diagnostics sink for the budget service.
func WithBudgetDiagnostics(diag *diagnostics.Diagnostics) BudgetServiceOption {
	return func(s *budgetService) {
		s.Diag = diag
	}
}

// NewBudgetService creates a new budget service.
func NewBudgetService(
	expenseRepo portsrepo.ExpenseRepository,
	categoryRepo portsrepo.CategoryRepository,
	budgetRepo portsrepo.BudgetRepository,
	options ...BudgetServiceOption,
) portssvc.BudgetSvcFacade {
	svc := &budgetService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// MonthlyExpensesByCategory groups the month's qualifying expenses by
// category, sorted descending by total. Categories with no qualifying spend
// are omitted; expenses whose category no longer exists are grouped under a
// placeholder category with an empty identifier.
func (s *budgetService) MonthlyExpensesByCategory(ctx context.Context, month time.Time) ([]domain.CategorySpend, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	byID := make(map[string]domain.Category, len(categories))
	for _, category := range categories {
		byID[category.CategoryID] = category
	}

	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		if !expense.CountsTowardMonth(month) {
			continue
		}
		totals[expense.CategoryID] = totals[expense.CategoryID].Add(expense.Amount)
	}

	rows := make([]domain.CategorySpend, 0, len(totals))
	for categoryID, total := range totals {
		category, ok := byID[categoryID]
		if !ok {
			category = domain.Category{Name: "Sin categoría"}
		}
		rows = append(rows, domain.CategorySpend{Category: category, Total: total})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows, nil
}

// TotalMonthlyExpenses sums the month's qualifying expenses.
func (s *budgetService) TotalMonthlyExpenses(ctx context.Context, month time.Time) (decimal.Decimal, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	for _, expense := range expenses {
		if expense.CountsTowardMonth(month) {
			total = total.Add(expense.Amount)
		}
	}
	return total, nil
}

// MonthlyTrend returns the qualifying totals of the most recent N months
// including the current one, oldest to newest. Months without expenses
// appear with a zero total.
func (s *budgetService) MonthlyTrend(ctx context.Context, months int) ([]domain.MonthTotal, error) {
	if months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive", apperrors.ErrValidation)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	current := domain.NormalizeMonth(time.Now())
	points := make([]domain.MonthTotal, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := current.AddDate(0, -i, 0)
		total := decimal.Zero
		for _, expense := range expenses {
			if expense.CountsTowardMonth(month) {
				total = total.Add(expense.Amount)
			}
		}
		points = append(points, domain.MonthTotal{Month: month, Total: total})
	}
	return points, nil
}

// BudgetProgress returns the unclamped spend-to-budget ratio for a category
// and month. Without a budget, or with a non-positive budget amount, the
// ratio is 0; values above 1.0 mean the category is over budget.
func (s *budgetService) BudgetProgress(ctx context.Context, categoryID string, month time.Time) (float64, error) {
	budget, err := s.GetBudget(ctx, categoryID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if !budget.Amount.IsPositive() {
		return 0, nil
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	spent := decimal.Zero
	for _, expense := range expenses {
		if expense.CategoryID == categoryID && expense.CountsTowardMonth(month) {
			spent = spent.Add(expense.Amount)
		}
	}
	ratio, _ := spent.Div(budget.Amount).Float64()
	return ratio, nil
}

// GetBudget retrieves the budget of a (category, month) pair.
func (s *budgetService) GetBudget(ctx context.Context, categoryID string, month time.Time) (*domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	for i := range budgets {
		if budgets[i].CategoryID == categoryID && budgets[i].CoversMonth(month) {
			return &budgets[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SetBudget creates or updates the single budget of the (category, month)
// pair. The stored month is normalized to its first instant so equal months
// always collide on the same document.
func (s *budgetService) SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	budget, err := s.GetBudget(ctx, req.CategoryID, req.Month)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		budget = &domain.Budget{
			BudgetID:   uuid.NewString(),
			CategoryID: req.CategoryID,
		}
	}
	budget.Amount = req.Amount
	budget.Month = domain.NormalizeMonth(req.Month)

	if err := s.budgetRepo.SaveBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.String("category_id", req.CategoryID), slog.Time("month", budget.Month))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	return budget, nil
}

// RemoveBudget deletes the budget of the pair; a no-op when none exists.
func (s *budgetService) RemoveBudget(ctx context.Context, categoryID string, month time.Time) error {
	budget, err := s.GetBudget(ctx, categoryID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budget.BudgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budget.BudgetID))
		return err
	}
	return nil
}

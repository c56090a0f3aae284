package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
)

// categoryService manages expense categories, including the starter set
// seeded on first run.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
	expenseRepo  portsrepo.ExpenseRepository
}

// CategoryServiceOption is a functional option for configuring the category service.
type CategoryServiceOption func(*categoryService)

// WithCategoryDiagnostics sets the diagnostics sink for the category service.
func WithCategoryDiagnostics(diag *diagnostics.Diagnostics) CategoryServiceOption {
	return func(s *categoryService) {
		s.Diag = diag
	}
}

// NewCategoryService creates a new category service.
func NewCategoryService(
	categoryRepo portsrepo.CategoryRepository,
	expenseRepo portsrepo.ExpenseRepository,
	options ...CategoryServiceOption,
) portssvc.CategorySvcFacade {
	svc := &categoryService{
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// GetCategoryByID retrieves a specific category.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

// ListCategories retrieves all categories.
func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

// CreateCategory persists a new category.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID:    uuid.NewString(),
		Name:          req.Name,
		Color:         req.Color,
		Icon:          req.Icon,
		DefaultBudget: req.DefaultBudget,
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return &category, nil
}

// UpdateCategory applies the provided fields to an existing category.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.DefaultBudget != nil {
		category.DefaultBudget = req.DefaultBudget
	}

	if err := s.categoryRepo.SaveCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category. A category still referenced by any
// expense cannot be deleted; reporting over historical expenses depends on
// the category surviving.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}
	for _, expense := range expenses {
		if expense.CategoryID == categoryID {
			return fmt.Errorf("%w: category %s is referenced by expenses", apperrors.ErrCategoryInUse, categoryID)
		}
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	return nil
}

// EnsureDefaultCategories seeds the starter categories when the collection is
// empty. Any existing category, even a single one, suppresses seeding.
func (s *categoryService) EnsureDefaultCategories(ctx context.Context) error {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) > 0 {
		return nil
	}

	for _, category := range domain.DefaultCategories() {
		category.CategoryID = uuid.NewString()
		if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
			s.LogError(ctx, err, "Failed to seed default category", slog.String("name", category.Name))
			return fmt.Errorf("failed to save category: %w", err)
		}
	}
	s.LogInfo(ctx, "Seeded default categories", slog.Int("count", len(domain.DefaultCategories())))
	return nil
}

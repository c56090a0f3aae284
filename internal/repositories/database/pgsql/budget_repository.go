package pgsql

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget documents.
func newPgxBudgetRepository(base BaseRepository) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// ListBudgets retrieves the full budgets snapshot.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	return listDocuments[domain.Budget](ctx, &r.BaseRepository, portsrepo.CollectionBudgets)
}

// SaveBudget upserts a budget document.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	return saveDocument(ctx, &r.BaseRepository, portsrepo.CollectionBudgets, budget.BudgetID, budget)
}

// DeleteBudget removes a budget document.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	return deleteDocument(ctx, &r.BaseRepository, portsrepo.CollectionBudgets, budgetID)
}

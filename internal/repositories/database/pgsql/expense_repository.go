package pgsql

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense documents.
func newPgxExpenseRepository(base BaseRepository) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// FindExpenseByID retrieves an expense by its identifier.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return findDocument[domain.Expense](ctx, &r.BaseRepository, portsrepo.CollectionExpenses, expenseID)
}

// ListExpenses retrieves the full expenses snapshot.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return listDocuments[domain.Expense](ctx, &r.BaseRepository, portsrepo.CollectionExpenses)
}

// SaveExpense upserts an expense document.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return saveDocument(ctx, &r.BaseRepository, portsrepo.CollectionExpenses, expense.ExpenseID, expense)
}

// DeleteExpense removes an expense document.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	return deleteDocument(ctx, &r.BaseRepository, portsrepo.CollectionExpenses, expenseID)
}

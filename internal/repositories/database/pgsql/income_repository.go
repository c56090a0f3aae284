package pgsql

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
)

type PgxIncomeRepository struct {
	BaseRepository
}

// newPgxIncomeRepository creates a new repository for income documents.
func newPgxIncomeRepository(base BaseRepository) portsrepo.IncomeRepository {
	return &PgxIncomeRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.IncomeRepository = (*PgxIncomeRepository)(nil)

// FindIncomeByID retrieves an income source by its identifier.
func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	return findDocument[domain.Income](ctx, &r.BaseRepository, portsrepo.CollectionIncomes, incomeID)
}

// ListIncomes retrieves the full incomes snapshot.
func (r *PgxIncomeRepository) ListIncomes(ctx context.Context) ([]domain.Income, error) {
	return listDocuments[domain.Income](ctx, &r.BaseRepository, portsrepo.CollectionIncomes)
}

// SaveIncome upserts an income document.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	return saveDocument(ctx, &r.BaseRepository, portsrepo.CollectionIncomes, income.IncomeID, income)
}

// DeleteIncome removes an income document.
func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	return deleteDocument(ctx, &r.BaseRepository, portsrepo.CollectionIncomes, incomeID)
}

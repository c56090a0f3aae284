package pgsql

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
)

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt documents.
// Installments travel inside the parent debt document.
func newPgxDebtRepository(base BaseRepository) portsrepo.DebtRepository {
	return &PgxDebtRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.DebtRepository = (*PgxDebtRepository)(nil)

// FindDebtByID retrieves a debt by its identifier.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	return findDocument[domain.Debt](ctx, &r.BaseRepository, portsrepo.CollectionDebts, debtID)
}

// ListDebts retrieves the full debts snapshot.
func (r *PgxDebtRepository) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	return listDocuments[domain.Debt](ctx, &r.BaseRepository, portsrepo.CollectionDebts)
}

// SaveDebt upserts a debt document together with its installments.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	return saveDocument(ctx, &r.BaseRepository, portsrepo.CollectionDebts, debt.DebtID, debt)
}

// DeleteDebt removes a debt document.
func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, debtID string) error {
	return deleteDocument(ctx, &r.BaseRepository, portsrepo.CollectionDebts, debtID)
}

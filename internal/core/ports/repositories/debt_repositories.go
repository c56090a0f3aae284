package repositories

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
)

// DebtRepository provides access to the debts collection. Installments are
// embedded in their parent debt document and are never persisted separately.
type DebtRepository interface {
	// FindDebtByID retrieves a specific debt by its unique identifier.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebts retrieves the current snapshot of all debts.
	ListDebts(ctx context.Context) ([]domain.Debt, error)

	// SaveDebt upserts a debt document together with its installments.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// DeleteDebt removes a debt document.
	DeleteDebt(ctx context.Context, debtID string) error
}

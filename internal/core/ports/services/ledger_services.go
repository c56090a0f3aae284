package services

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
)

// LedgerSvcFacade is the ledger reconciliation engine: it appends signed
// transactions, guards against duplicate postings for the same expense, and
// keeps every account's derived balance consistent with the ledger.
type LedgerSvcFacade interface {
	// AddTransaction appends a ledger entry and recomputes account balances.
	// A transaction referencing an expense that already has a posting is
	// rejected as a silent no-op and the existing entry is returned.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// RecomputeBalances rebuilds every account's current balance from its
	// initial balance plus the full signed ledger.
	RecomputeBalances(ctx context.Context) error

	// BackfillFromExpenses synthesizes a transaction for every expense that
	// lacks one, posting to the default account. Safe to re-run; returns the
	// number of transactions created.
	BackfillFromExpenses(ctx context.Context) (int, error)

	// RegisterExpense posts an expense to the account owning its payment
	// method, falling back to the default account. A no-op when no accounts
	// exist or the expense already has a posting.
	RegisterExpense(ctx context.Context, expense domain.Expense) error

	// RemoveExpensePosting deletes the transaction linked to an expense, if
	// any, and recomputes balances. Used when the source expense is deleted.
	RemoveExpensePosting(ctx context.Context, expenseID string) error
}

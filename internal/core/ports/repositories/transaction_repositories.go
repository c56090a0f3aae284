package repositories

import (
	"context"
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
)

// TransactionReader defines read operations over the transaction ledger.
type TransactionReader interface {
	// ListTransactions retrieves the current snapshot of the full ledger.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves ledger entries for one account,
	// newest first, bounded by limit and an optional exclusive before cursor.
	ListTransactionsByAccount(ctx context.Context, accountID string, before *time.Time, limit int) ([]domain.Transaction, error)

	// FindTransactionByExpenseID retrieves the transaction linked to an
	// expense, or apperrors.ErrNotFound when no posting exists for it.
	FindTransactionByExpenseID(ctx context.Context, expenseID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for the transaction ledger.
// Ledger entries are immutable once created; there is no update.
type TransactionWriter interface {
	// SaveTransaction appends a new ledger entry.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a ledger entry; used only when the source
	// record (expense) is itself deleted.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepository combines read and write access to the ledger.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}

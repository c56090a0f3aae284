package repositories

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
)

// AccountReader defines read operations for account documents.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the current snapshot of all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account documents.
type AccountWriter interface {
	// SaveAccount upserts an account document.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account document.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepository combines read and write access to the accounts collection.
type AccountRepository interface {
	AccountReader
	AccountWriter
}

package services

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetAccountBalance returns the account's reconciled balance, recomputed
	// from the ledger rather than read from the stored derived field.
	GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// ListAccountTransactions returns one page of the account's ledger,
	// newest first, with a continuation token for the next page.
	ListAccountTransactions(ctx context.Context, accountID string, token string, limit int) ([]domain.Transaction, string, error)
}

// AccountWriterSvc defines write operations for accounts.
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

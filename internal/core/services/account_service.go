package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
	"github.com/lsotoflores/expenses_tracker_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const defaultTransactionPageSize = 20

// accountService implements account management on top of the account and
// transaction repositories.
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
}

// AccountServiceOption is a functional option for configuring the account service.
type AccountServiceOption func(*accountService)

// WithAccountDiagnostics sets the diagnostics sink for the account service.
func WithAccountDiagnostics(diag *diagnostics.Diagnostics) AccountServiceOption {
	return func(s *accountService) {
		s.Diag = diag
	}
}

// NewAccountService creates a new account service.
func NewAccountService(
	accountRepo portsrepo.AccountRepository,
	transactionRepo portsrepo.TransactionRepository,
	options ...AccountServiceOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account. The current balance starts equal to
// the initial balance; the ledger moves it from there.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	account := domain.Account{
		AccountID:        uuid.NewString(),
		Name:             req.Name,
		Type:             req.Type,
		InitialBalance:   req.InitialBalance,
		CurrentBalance:   req.InitialBalance,
		CurrencyCode:     req.CurrencyCode,
		Color:            req.Color,
		PaymentMethodIDs: req.PaymentMethodIDs,
		IsDefault:        req.IsDefault,
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return &account, nil
}

// UpdateAccount applies the provided fields to an existing account. The
// initial balance and type are immutable after creation; correcting a wrong
// opening balance means recreating the account.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Color != nil {
		account.Color = *req.Color
	}
	if req.PaymentMethodIDs != nil {
		account.PaymentMethodIDs = *req.PaymentMethodIDs
	}
	if req.IsDefault != nil {
		account.IsDefault = *req.IsDefault
	}

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return account, nil
}

// DeleteAccount removes an account. Its ledger entries are kept; they simply
// stop contributing to any balance.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	return nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// GetAccountBalance recomputes the account's balance from the ledger instead
// of trusting the stored derived field.
func (s *accountService) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID, nil, 0)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list transactions: %w", err)
	}

	balance := account.InitialBalance
	for _, txn := range txns {
		balance = balance.Add(txn.SignedAmount())
	}
	return balance, nil
}

// ListAccountTransactions returns one page of the account's ledger, newest
// first. The returned token resumes after the last entry of this page and is
// empty when the page was not full.
func (s *accountService) ListAccountTransactions(ctx context.Context, accountID string, token string, limit int) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var before *time.Time
	if token != "" {
		cursor, err := pagination.DecodeDateBasedToken(token)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		before = &cursor
	}

	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID, before, limit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}

	nextToken := ""
	if len(txns) == limit {
		nextToken = pagination.EncodeDateBasedToken(txns[len(txns)-1].Date)
	}
	return txns, nextToken, nil
}

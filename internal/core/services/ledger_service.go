package services

import (
	"context"
	"errors"
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
)

// ledgerService implements the ledger reconciliation engine. Balances are
// always rebuilt in full from the transaction snapshot after a mutation;
// there is no incremental delta path, trading efficiency for correctness at
// personal-finance data volumes.
type ledgerService struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	expenseRepo     portsrepo.ExpenseRepository
}

// LedgerServiceOption is a functional option for configuring the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithLedgerDiagnostics sets the diagnostics sink for the ledger service.
func WithLedgerDiagnostics(diag *diagnostics.Diagnostics) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Diag = diag
	}
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	accountRepo portsrepo.AccountRepository,
	transactionRepo portsrepo.TransactionRepository,
	expenseRepo portsrepo.ExpenseRepository,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AddTransaction appends a ledger entry and recomputes account balances. A
// transaction referencing an expense that already has a posting is rejected
// as a silent no-op, preserving the at-most-one-posting-per-expense
// invariant; the existing entry is returned.
func (s *ledgerService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.ExpenseID != "" {
		existing, err := s.transactionRepo.FindTransactionByExpenseID(ctx, req.ExpenseID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for duplicate posting: %w", err)
		}
		if existing != nil {
			s.Diag.DuplicateTransaction()
			s.LogWarn(ctx, "Duplicate posting for expense rejected",
				slog.String("expense_id", req.ExpenseID),
				slog.String("existing_transaction_id", existing.TransactionID))
			return existing, nil
		}
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ExpenseID:     req.ExpenseID,
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		Type:          req.Type,
		Date:          date,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := s.RecomputeBalances(ctx); err != nil {
		s.LogError(ctx, err, "Failed to recompute balances after add", slog.String("transaction_id", txn.TransactionID))
	}
	return &txn, nil
}

// RecomputeBalances rebuilds every account's current balance from scratch:
// balance = initial balance + sum of signed amounts over the account's
// transactions. Persistence failures for individual accounts are logged and
// do not stop the recomputation of the rest.
func (s *ledgerService) RecomputeBalances(ctx context.Context) error {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	for i := range accounts {
		account := &accounts[i]
		balance := account.InitialBalance
		for _, txn := range txns {
			if txn.AccountID == account.AccountID {
				balance = balance.Add(txn.SignedAmount())
			}
		}
		if balance.Equal(account.CurrentBalance) {
			continue
		}
		account.CurrentBalance = balance
		if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
			s.LogError(ctx, err, "Failed to persist recomputed balance",
				slog.String("account_id", account.AccountID),
				slog.String("balance", balance.String()))
		}
	}
	return nil
}

// BackfillFromExpenses synthesizes a transaction for every expense that has
// none, posting to the default account. It is idempotent: expenses that
// already have a posting are skipped, so re-running after a partial failure
// or a retried sync is safe. Returns the number of transactions created.
func (s *ledgerService) BackfillFromExpenses(ctx context.Context) (int, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	fallback := domain.DefaultAccount(accounts)
	if fallback == nil {
		s.Diag.MissingAccount()
		s.LogWarn(ctx, "Backfill skipped: no accounts exist")
		return 0, nil
	}

	posted := make(map[string]bool, len(txns))
	for _, txn := range txns {
		if txn.ExpenseID != "" {
			posted[txn.ExpenseID] = true
		}
	}

	created := 0
	for _, expense := range expenses {
		if posted[expense.ExpenseID] {
			continue
		}
		txn := transactionForExpense(expense, fallback.AccountID)
		if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
			s.LogError(ctx, err, "Failed to backfill transaction", slog.String("expense_id", expense.ExpenseID))
			continue
		}
		created++
	}

	if created > 0 {
		if err := s.RecomputeBalances(ctx); err != nil {
			s.LogError(ctx, err, "Failed to recompute balances after backfill")
		}
		s.LogInfo(ctx, "Backfilled transactions from expenses", slog.Int("created", created))
	}
	return created, nil
}

// RegisterExpense posts an expense to the account whose payment method list
// contains the expense's payment method; without such an account it falls
// back to the default account. No-ops when no accounts exist or the expense
// already has a posting.
func (s *ledgerService) RegisterExpense(ctx context.Context, expense domain.Expense) error {
	existing, err := s.transactionRepo.FindTransactionByExpenseID(ctx, expense.ExpenseID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for duplicate posting: %w", err)
	}
	if existing != nil {
		s.Diag.DuplicateTransaction()
		s.LogWarn(ctx, "Expense already posted", slog.String("expense_id", expense.ExpenseID))
		return nil
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	var target *domain.Account
	if expense.PaymentMethodID != "" {
		for i := range accounts {
			if accounts[i].HasPaymentMethod(expense.PaymentMethodID) {
				target = &accounts[i]
				break
			}
		}
	}
	if target == nil {
		target = domain.DefaultAccount(accounts)
	}
	if target == nil {
		s.Diag.MissingAccount()
		s.LogWarn(ctx, "Expense registration skipped: no accounts exist", slog.String("expense_id", expense.ExpenseID))
		return nil
	}

	txn := transactionForExpense(expense, target.AccountID)
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to post expense", slog.String("expense_id", expense.ExpenseID))
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := s.RecomputeBalances(ctx); err != nil {
		s.LogError(ctx, err, "Failed to recompute balances after expense posting", slog.String("expense_id", expense.ExpenseID))
	}
	return nil
}

// RemoveExpensePosting deletes the transaction linked to an expense, if any,
// and recomputes balances. Ledger entries are otherwise immutable; this path
// exists only for cascade deletion of the source expense.
func (s *ledgerService) RemoveExpensePosting(ctx context.Context, expenseID string) error {
	txn, err := s.transactionRepo.FindTransactionByExpenseID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up posting: %w", err)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, txn.TransactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete posting",
			slog.String("expense_id", expenseID), slog.String("transaction_id", txn.TransactionID))
		return err
	}

	if err := s.RecomputeBalances(ctx); err != nil {
		s.LogError(ctx, err, "Failed to recompute balances after posting removal", slog.String("expense_id", expenseID))
	}
	return nil
}

// transactionForExpense maps an expense to its ledger entry. Recurring
// expenses post as debt-type entries, one-off expenses as expense-type; both
// subtract from the account balance.
func transactionForExpense(expense domain.Expense, accountID string) domain.Transaction {
	txnType := domain.TransactionExpense
	if expense.IsRecurring {
		txnType = domain.TransactionDebt
	}
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		ExpenseID:     expense.ExpenseID,
		AccountID:     accountID,
		Amount:        expense.Amount,
		Type:          txnType,
		Date:          expense.Date,
		Description:   expense.Name,
		CategoryID:    expense.CategoryID,
	}
}

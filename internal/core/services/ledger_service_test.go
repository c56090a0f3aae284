package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	mockExpenseRepo *MockExpenseRepository
	diag            *diagnostics.Diagnostics
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.diag = new(diagnostics.Diagnostics)
	suite.service = services.NewLedgerService(suite.mockAccountRepo, suite.mockTxnRepo, suite.mockExpenseRepo,
		services.WithLedgerDiagnostics(suite.diag))
}

func newTestAccount(initial string) domain.Account {
	return domain.Account{
		AccountID:      uuid.NewString(),
		Name:           "Cuenta principal",
		Type:           domain.Checking,
		InitialBalance: decimal.RequireFromString(initial),
		CurrentBalance: decimal.RequireFromString(initial),
		CurrencyCode:   "PEN",
		IsDefault:      true,
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestAddTransaction_RecomputesBalance() {
	ctx := context.Background()
	account := newTestAccount("500")

	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: account.AccountID, Amount: decimal.RequireFromString("50"), Type: domain.TransactionExpense},
		{TransactionID: uuid.NewString(), AccountID: account.AccountID, Amount: decimal.RequireFromString("200"), Type: domain.TransactionIncome},
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		// 500 - 50 + 200
		return a.CurrentBalance.Equal(decimal.RequireFromString("650"))
	})).Return(nil).Once()

	txn, err := suite.service.AddTransaction(ctx, dto.CreateTransactionRequest{
		AccountID: account.AccountID,
		Amount:    decimal.RequireFromString("200"),
		Type:      domain.TransactionIncome,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.False(txn.Date.IsZero())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_DuplicateExpensePostingRejected() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Transaction{TransactionID: uuid.NewString(), ExpenseID: expenseID}

	suite.mockTxnRepo.On("FindTransactionByExpenseID", ctx, expenseID).Return(existing, nil).Once()

	txn, err := suite.service.AddTransaction(ctx, dto.CreateTransactionRequest{
		AccountID: uuid.NewString(),
		ExpenseID: expenseID,
		Amount:    decimal.RequireFromString("25"),
		Type:      domain.TransactionExpense,
	})

	suite.Require().NoError(err)
	suite.Equal(existing.TransactionID, txn.TransactionID, "the existing posting is returned")
	suite.Equal(int64(1), suite.diag.DuplicateTransactionCount())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecomputeBalances_SkipsUnchangedAccounts() {
	ctx := context.Background()
	account := newTestAccount("100")

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	err := suite.service.RecomputeBalances(ctx)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestBackfillFromExpenses_CreatesMissingPostings() {
	ctx := context.Background()
	account := newTestAccount("1000")
	posted := domain.Expense{ExpenseID: uuid.NewString(), Name: "Luz", Amount: decimal.RequireFromString("80"), Date: time.Now()}
	unposted := domain.Expense{ExpenseID: uuid.NewString(), Name: "Agua", Amount: decimal.RequireFromString("40"), Date: time.Now()}
	recurring := domain.Expense{ExpenseID: uuid.NewString(), Name: "Renta", Amount: decimal.RequireFromString("1200"), Date: time.Now(), IsRecurring: true, RecurrenceInterval: domain.Monthly}

	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{posted, unposted, recurring}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{
		{TransactionID: uuid.NewString(), ExpenseID: posted.ExpenseID, AccountID: account.AccountID},
	}, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{account}, nil)

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ExpenseID == unposted.ExpenseID && t.Type == domain.TransactionExpense && t.AccountID == account.AccountID
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ExpenseID == recurring.ExpenseID && t.Type == domain.TransactionDebt
	})).Return(nil).Once()

	// recomputation after the backfill
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	created, err := suite.service.BackfillFromExpenses(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, created)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestBackfillFromExpenses_NoAccountsIsNoOp() {
	ctx := context.Background()
	expense := domain.Expense{ExpenseID: uuid.NewString(), Amount: decimal.RequireFromString("40"), Date: time.Now()}

	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{expense}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()

	created, err := suite.service.BackfillFromExpenses(ctx)

	suite.Require().NoError(err)
	suite.Zero(created)
	suite.Equal(int64(1), suite.diag.MissingAccountCount())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRegisterExpense_MatchesPaymentMethodAccount() {
	ctx := context.Background()
	paymentMethodID := uuid.NewString()
	fallback := newTestAccount("100")
	owner := domain.Account{
		AccountID:        uuid.NewString(),
		Name:             "Tarjeta",
		Type:             domain.Credit,
		CurrencyCode:     "PEN",
		PaymentMethodIDs: []string{paymentMethodID},
	}
	expense := domain.Expense{ExpenseID: uuid.NewString(), Name: "Cine", Amount: decimal.RequireFromString("30"), Date: time.Now(), PaymentMethodID: paymentMethodID}

	suite.mockTxnRepo.On("FindTransactionByExpenseID", ctx, expense.ExpenseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{fallback, owner}, nil)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.AccountID == owner.AccountID
	})).Return(nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	err := suite.service.RegisterExpense(ctx, expense)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRegisterExpense_AlreadyPostedIsNoOp() {
	ctx := context.Background()
	expense := domain.Expense{ExpenseID: uuid.NewString(), Amount: decimal.RequireFromString("30"), Date: time.Now()}
	existing := &domain.Transaction{TransactionID: uuid.NewString(), ExpenseID: expense.ExpenseID}

	suite.mockTxnRepo.On("FindTransactionByExpenseID", ctx, expense.ExpenseID).Return(existing, nil).Once()

	err := suite.service.RegisterExpense(ctx, expense)

	suite.Require().NoError(err)
	suite.Equal(int64(1), suite.diag.DuplicateTransactionCount())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRemoveExpensePosting_DeletesAndRecomputes() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), ExpenseID: expenseID}

	suite.mockTxnRepo.On("FindTransactionByExpenseID", ctx, expenseID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, txn.TransactionID).Return(nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	err := suite.service.RemoveExpensePosting(ctx, expenseID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRemoveExpensePosting_NoPostingIsNoOp() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByExpenseID", ctx, expenseID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RemoveExpensePosting(ctx, expenseID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

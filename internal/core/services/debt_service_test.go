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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo    *MockDebtRepository
	mockExpenseRepo *MockExpenseRepository
	mockLedger      *MockLedgerService
	diag            *diagnostics.Diagnostics
	service         portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockLedger = new(MockLedgerService)
	suite.diag = new(diagnostics.Diagnostics)
	suite.service = services.NewDebtService(suite.mockDebtRepo, suite.mockExpenseRepo, suite.mockLedger,
		services.WithDebtDiagnostics(suite.diag))
}

func decPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

// newTestDebt builds a pending debt with a generated schedule.
func newTestDebt(total *decimal.Decimal, count int, start time.Time) *domain.Debt {
	debt := &domain.Debt{
		DebtID:           uuid.NewString(),
		Name:             "Laptop",
		TotalAmount:      total,
		InstallmentCount: count,
		StartDate:        start,
		Status:           domain.DebtPending,
	}
	debt.GenerateInstallments()
	return debt
}

// --- Test Cases ---

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Name:             "Laptop",
		TotalAmount:      decPtr("1200"),
		InstallmentCount: 12,
		StartDate:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockDebtRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.Name == req.Name && len(d.Installments) == 12 && d.Status == domain.DebtPending
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.Len(debt.Installments, 12)
	suite.True(debt.Installments[0].Amount.Equal(decimal.RequireFromString("100")))
	suite.Equal(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), debt.Installments[11].DueDate)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_InvalidInstallmentCount() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{Name: "Bad", InstallmentCount: 0}

	debt, err := suite.service.CreateDebt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestRegisterPayment_DefaultsToNominalAmount() {
	ctx := context.Background()
	debt := newTestDebt(decPtr("1200"), 12, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(decimal.RequireFromString("100")) && e.Name == "Laptop (installment 1/12)"
	})).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	result, err := suite.service.RegisterPayment(ctx, debt.DebtID, 1, nil)

	suite.Require().NoError(err)
	inst := result.FindInstallment(1)
	suite.Require().NotNil(inst)
	suite.True(inst.IsPaid())
	suite.True(inst.PaidAmount.Equal(decimal.RequireFromString("100")))
	suite.NotEmpty(inst.ExpenseID)
	suite.Equal(domain.DebtPending, result.Status)
	suite.mockDebtRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestRegisterPayment_ExplicitAmount() {
	ctx := context.Background()
	debt := newTestDebt(decPtr("300"), 3, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	result, err := suite.service.RegisterPayment(ctx, debt.DebtID, 2, decPtr("80"))

	suite.Require().NoError(err)
	inst := result.FindInstallment(2)
	suite.True(inst.PaidAmount.Equal(decimal.RequireFromString("80")))
	suite.True(inst.IsPaid(), "any registered amount marks the installment paid")
}

func (suite *DebtServiceTestSuite) TestRegisterPayment_FinalPaymentFlipsStatus() {
	ctx := context.Background()
	debt := newTestDebt(decPtr("200"), 2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Now()
	debt.Installments[0].PaidAmount = decPtr("100")
	debt.Installments[0].PaidDate = &now

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.Status == domain.DebtPaid
	})).Return(nil).Once()

	result, err := suite.service.RegisterPayment(ctx, debt.DebtID, 2, nil)

	suite.Require().NoError(err)
	suite.Equal(domain.DebtPaid, result.Status)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestRegisterPayment_UnknownInstallmentIsNoOp() {
	ctx := context.Background()
	debt := newTestDebt(decPtr("100"), 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()

	result, err := suite.service.RegisterPayment(ctx, debt.DebtID, 99, nil)

	suite.Require().NoError(err)
	suite.Equal(debt.DebtID, result.DebtID)
	suite.Equal(int64(1), suite.diag.InstallmentNotFoundCount())
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestRegisterPayment_UnknownTotalWithoutAmountIsNoOp() {
	ctx := context.Background()
	debt := newTestDebt(nil, 3, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()

	result, err := suite.service.RegisterPayment(ctx, debt.DebtID, 1, nil)

	suite.Require().NoError(err)
	suite.False(result.FindInstallment(1).IsPaid())
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestRegisterPayment_UnknownTotalWithExplicitAmount() {
	ctx := context.Background()
	debt := newTestDebt(nil, 3, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	result, err := suite.service.RegisterPayment(ctx, debt.DebtID, 1, decPtr("150"))

	suite.Require().NoError(err)
	suite.True(result.FindInstallment(1).PaidAmount.Equal(decimal.RequireFromString("150")))
}

func (suite *DebtServiceTestSuite) TestRegisterPayment_PersistenceFailureKeepsMutation() {
	ctx := context.Background()
	debt := newTestDebt(decPtr("100"), 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(assert.AnError).Once()

	result, err := suite.service.RegisterPayment(ctx, debt.DebtID, 1, nil)

	suite.Require().NoError(err, "a failed write is logged, not surfaced")
	suite.True(result.FindInstallment(1).IsPaid())
	suite.Equal(domain.DebtPaid, result.Status)
}

func (suite *DebtServiceTestSuite) TestRegisterPayment_AlreadyPaidIsNoOp() {
	// Paying an installment twice would replace the linked expense reference
	// and orphan the first expense record. The second payment is ignored.
	ctx := context.Background()
	debt := newTestDebt(decPtr("200"), 2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Now()
	debt.Installments[0].PaidAmount = decPtr("100")
	debt.Installments[0].PaidDate = &now
	debt.Installments[0].ExpenseID = uuid.NewString()
	originalExpenseID := debt.Installments[0].ExpenseID

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()

	result, err := suite.service.RegisterPayment(ctx, debt.DebtID, 1, decPtr("80"))

	suite.Require().NoError(err)
	inst := result.FindInstallment(1)
	suite.True(decPtr("100").Equal(*inst.PaidAmount), "original payment amount kept")
	suite.Equal(originalExpenseID, inst.ExpenseID, "linked expense not replaced")
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt")
}

func (suite *DebtServiceTestSuite) TestUndoPayment_ForcesStatusPending() {
	ctx := context.Background()
	debt := newTestDebt(decPtr("200"), 2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Now()
	for i := range debt.Installments {
		debt.Installments[i].PaidAmount = decPtr("100")
		debt.Installments[i].PaidDate = &now
	}
	debt.Installments[0].ExpenseID = uuid.NewString()
	expenseID := debt.Installments[0].ExpenseID
	debt.Status = domain.DebtPaid

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockLedger.On("RemoveExpensePosting", ctx, expenseID).Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, expenseID).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	result, err := suite.service.UndoPayment(ctx, debt.DebtID, 1)

	suite.Require().NoError(err)
	inst := result.FindInstallment(1)
	suite.False(inst.IsPaid())
	suite.Nil(inst.PaidDate)
	suite.Empty(inst.ExpenseID)
	suite.Equal(domain.DebtPending, result.Status)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestUndoPayment_RemovesLedgerPostingWithExpense() {
	// The installment expense can acquire a ledger posting between payment
	// and undo (the startup backfill posts every unposted expense). Undo
	// must remove that posting along with the expense so no transaction
	// outlives its source record.
	ctx := context.Background()
	debt := newTestDebt(decPtr("500"), 5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Now()
	debt.Installments[0].PaidAmount = decPtr("100")
	debt.Installments[0].PaidDate = &now
	debt.Installments[0].ExpenseID = uuid.NewString()
	expenseID := debt.Installments[0].ExpenseID

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockLedger.On("RemoveExpensePosting", ctx, expenseID).Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, expenseID).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	result, err := suite.service.UndoPayment(ctx, debt.DebtID, 1)

	suite.Require().NoError(err)
	suite.Empty(result.FindInstallment(1).ExpenseID)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestUndoPayment_LedgerFailureStillReverses() {
	// A failed posting removal is logged, not surfaced: the expense is still
	// deleted and the installment still reset.
	ctx := context.Background()
	debt := newTestDebt(decPtr("500"), 5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Now()
	debt.Installments[0].PaidAmount = decPtr("100")
	debt.Installments[0].PaidDate = &now
	debt.Installments[0].ExpenseID = uuid.NewString()
	expenseID := debt.Installments[0].ExpenseID

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockLedger.On("RemoveExpensePosting", ctx, expenseID).Return(assert.AnError).Once()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, expenseID).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	result, err := suite.service.UndoPayment(ctx, debt.DebtID, 1)

	suite.Require().NoError(err)
	suite.False(result.FindInstallment(1).IsPaid())
	suite.Equal(domain.DebtPending, result.Status)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestUndoPayment_UnpaidInstallmentStillResetsStatus() {
	// Undo does not recheck the other installments: even undoing an
	// installment that was never paid resets the debt to pending.
	ctx := context.Background()
	debt := newTestDebt(decPtr("200"), 2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Now()
	debt.Installments[1].PaidAmount = decPtr("100")
	debt.Installments[1].PaidDate = &now
	debt.Status = domain.DebtPaid

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	result, err := suite.service.UndoPayment(ctx, debt.DebtID, 1)

	suite.Require().NoError(err)
	suite.Equal(domain.DebtPending, result.Status)
	suite.True(result.FindInstallment(2).IsPaid(), "other installments keep their payment state")
}

func (suite *DebtServiceTestSuite) TestUpdateDebt_RegeneratesSchedule() {
	ctx := context.Background()
	debt := newTestDebt(decPtr("1200"), 12, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	now := time.Now()
	debt.Installments[0].PaidAmount = decPtr("100")
	debt.Installments[0].PaidDate = &now

	newCount := 6
	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	result, err := suite.service.UpdateDebt(ctx, debt.DebtID, dto.UpdateDebtRequest{InstallmentCount: &newCount})

	suite.Require().NoError(err)
	suite.Len(result.Installments, 6)
	suite.True(result.Installments[0].Amount.Equal(decimal.RequireFromString("200")))
	suite.False(result.Installments[0].IsPaid(), "regeneration discards payment state")
}

func (suite *DebtServiceTestSuite) TestListDebts_Sorted() {
	ctx := context.Background()
	older := *newTestDebt(decPtr("100"), 1, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := *newTestDebt(decPtr("100"), 1, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	newer.CreatedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.mockDebtRepo.On("ListDebts", ctx).Return([]domain.Debt{newer, older}, nil).Once()

	debts, err := suite.service.ListDebts(ctx, domain.SortByCreationDate)

	suite.Require().NoError(err)
	suite.Require().Len(debts, 2)
	suite.Equal(older.DebtID, debts[0].DebtID, "oldest first")
}

func (suite *DebtServiceTestSuite) TestSummary() {
	ctx := context.Background()
	future := time.Now().AddDate(0, 2, 0)
	active := *newTestDebt(decPtr("300"), 3, future)
	settled := *newTestDebt(decPtr("100"), 1, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Now()
	settled.Installments[0].PaidAmount = decPtr("100")
	settled.Installments[0].PaidDate = &now
	settled.Status = domain.DebtPaid

	suite.mockDebtRepo.On("ListDebts", ctx).Return([]domain.Debt{active, settled}, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalDebtAmount.Equal(decimal.RequireFromString("400")))
	suite.Equal(1, summary.ActiveDebtCount)
	suite.Equal(3, summary.UpcomingPaymentCount)
}

func (suite *DebtServiceTestSuite) TestGetDebtByID_NotFound() {
	ctx := context.Background()
	debtID := uuid.NewString()

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(nil, apperrors.ErrNotFound).Once()

	debt, err := suite.service.GetDebtByID(ctx, debtID)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestDebtService(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}

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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockLedger      *MockLedgerService
	service         portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockLedger = new(MockLedgerService)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockLedger)
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_PostsToLedger() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:       "Supermercado",
		Amount:     decimal.RequireFromString("85.50"),
		CategoryID: uuid.NewString(),
	}

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Name == req.Name && !e.IsRecurring && !e.Date.IsZero()
	})).Return(nil).Once()
	suite.mockLedger.On("RegisterExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateRecurringSeries_ExpandsInclusive() {
	ctx := context.Background()
	req := dto.CreateRecurringExpenseRequest{
		Name:       "Renta",
		Amount:     decimal.RequireFromString("1200"),
		StartDate:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Interval:   domain.Monthly,
		CategoryID: uuid.NewString(),
	}

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Times(4)

	instances, err := suite.service.CreateRecurringSeries(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(instances, 4, "both endpoints inclusive")
	suite.Equal(req.StartDate, instances[0].Date)
	suite.Equal(req.EndDate, instances[3].Date)
	for _, instance := range instances {
		suite.True(instance.IsRecurring)
		suite.False(instance.IsPaid, "instances start unpaid")
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "RegisterExpense", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateRecurringSeries_EndBeforeStart() {
	ctx := context.Background()
	req := dto.CreateRecurringExpenseRequest{
		Name:      "Renta",
		Amount:    decimal.RequireFromString("1200"),
		StartDate: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Interval:  domain.Monthly,
	}

	instances, err := suite.service.CreateRecurringSeries(ctx, req)

	suite.Require().Error(err)
	suite.Nil(instances)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_FiltersCombine() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	june := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	matching := domain.Expense{ExpenseID: uuid.NewString(), CategoryID: categoryID, Date: june, Amount: decimal.RequireFromString("10")}
	wrongMonth := domain.Expense{ExpenseID: uuid.NewString(), CategoryID: categoryID, Date: june.AddDate(0, 1, 0), Amount: decimal.RequireFromString("10")}
	wrongCategory := domain.Expense{ExpenseID: uuid.NewString(), CategoryID: uuid.NewString(), Date: june, Amount: decimal.RequireFromString("10")}

	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{matching, wrongMonth, wrongCategory}, nil).Once()

	month := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	out, err := suite.service.ListExpenses(ctx, dto.ExpenseFilter{Month: &month, CategoryID: &categoryID})

	suite.Require().NoError(err)
	suite.Require().Len(out, 1)
	suite.Equal(matching.ExpenseID, out[0].ExpenseID)
}

func (suite *ExpenseServiceTestSuite) TestMarkExpensePaid_FlipsAndPosts() {
	ctx := context.Background()
	expense := &domain.Expense{
		ExpenseID:          uuid.NewString(),
		Name:               "Renta",
		Amount:             decimal.RequireFromString("1200"),
		Date:               time.Now(),
		IsRecurring:        true,
		RecurrenceInterval: domain.Monthly,
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.IsPaid
	})).Return(nil).Once()
	suite.mockLedger.On("RegisterExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.IsPaid
	})).Return(nil).Once()

	result, err := suite.service.MarkExpensePaid(ctx, expense.ExpenseID)

	suite.Require().NoError(err)
	suite.True(result.IsPaid)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestMarkExpensePaid_AlreadyPaidIsNoOp() {
	ctx := context.Background()
	expense := &domain.Expense{
		ExpenseID:   uuid.NewString(),
		IsRecurring: true,
		IsPaid:      true,
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expense.ExpenseID).Return(expense, nil).Once()

	result, err := suite.service.MarkExpensePaid(ctx, expense.ExpenseID)

	suite.Require().NoError(err)
	suite.True(result.IsPaid)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "RegisterExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestMarkExpensePaid_NonRecurringRejected() {
	ctx := context.Background()
	expense := &domain.Expense{ExpenseID: uuid.NewString()}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expense.ExpenseID).Return(expense, nil).Once()

	result, err := suite.service.MarkExpensePaid(ctx, expense.ExpenseID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestApplyAutomaticPayments_OnlyDueAutoPay() {
	ctx := context.Background()
	today := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	due := domain.Expense{ExpenseID: uuid.NewString(), Name: "Internet", Amount: decimal.RequireFromString("50"), Date: today, IsRecurring: true, AutoPay: true}
	notToday := domain.Expense{ExpenseID: uuid.NewString(), Date: today.AddDate(0, 0, 1), IsRecurring: true, AutoPay: true}
	manual := domain.Expense{ExpenseID: uuid.NewString(), Date: today, IsRecurring: true}
	alreadyPaid := domain.Expense{ExpenseID: uuid.NewString(), Date: today, IsRecurring: true, AutoPay: true, IsPaid: true}

	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{due, notToday, manual, alreadyPaid}, nil).Once()
	suite.mockExpenseRepo.On("FindExpenseByID", ctx, due.ExpenseID).Return(&due, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockLedger.On("RegisterExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	applied, err := suite.service.ApplyAutomaticPayments(ctx, today)

	suite.Require().NoError(err)
	suite.Equal(1, applied)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_RemovesPostingFirst() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockLedger.On("RemoveExpensePosting", ctx, expenseID).Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, expenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, expenseID)

	suite.Require().NoError(err)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

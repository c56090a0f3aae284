package domain_test

import (
	"testing"
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpense_CountsTowardMonth(t *testing.T) {
	month := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expense domain.Expense
		want    bool
	}{
		{
			name:    "non-recurring in month",
			expense: domain.Expense{Date: time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC)},
			want:    true,
		},
		{
			name:    "non-recurring outside month",
			expense: domain.Expense{Date: time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)},
			want:    false,
		},
		{
			name: "recurring unpaid in month",
			expense: domain.Expense{
				Date:               time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
				IsRecurring:        true,
				RecurrenceInterval: domain.Monthly,
			},
			want: false,
		},
		{
			name: "recurring paid in month",
			expense: domain.Expense{
				Date:               time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
				IsRecurring:        true,
				RecurrenceInterval: domain.Monthly,
				IsPaid:             true,
			},
			want: true,
		},
		{
			name: "same month different year",
			expense: domain.Expense{
				Date: time.Date(2023, time.July, 5, 0, 0, 0, 0, time.UTC),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expense.CountsTowardMonth(month))
		})
	}
}

func TestRecurrenceInterval_Next(t *testing.T) {
	start := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, start.AddDate(0, 0, 1), domain.Daily.Next(start))
	assert.Equal(t, start.AddDate(0, 0, 7), domain.Weekly.Next(start))
	assert.Equal(t, start.AddDate(0, 1, 0), domain.Monthly.Next(start))
	assert.Equal(t, start.AddDate(1, 0, 0), domain.Yearly.Next(start))
}

func TestTransaction_SignedAmount(t *testing.T) {
	amount := decimal.NewFromFloat(50)

	income := domain.Transaction{Amount: amount, Type: domain.TransactionIncome}
	assert.True(t, income.SignedAmount().Equal(amount))
	assert.True(t, income.IsIncoming())

	expense := domain.Transaction{Amount: amount, Type: domain.TransactionExpense}
	assert.True(t, expense.SignedAmount().Equal(amount.Neg()))

	debt := domain.Transaction{Amount: amount, Type: domain.TransactionDebt}
	assert.True(t, debt.SignedAmount().Equal(amount.Neg()))
	assert.False(t, debt.IsIncoming())
}

func TestDefaultAccount(t *testing.T) {
	first := domain.Account{AccountID: "a1"}
	flagged := domain.Account{AccountID: "a2", IsDefault: true}

	got := domain.DefaultAccount([]domain.Account{first, flagged})
	assert.Equal(t, "a2", got.AccountID)

	got = domain.DefaultAccount([]domain.Account{first})
	assert.Equal(t, "a1", got.AccountID)

	assert.Nil(t, domain.DefaultAccount(nil))
}

func TestProjectMonthlyIncome(t *testing.T) {
	salary := decimal.NewFromInt(1000)
	weekly := decimal.NewFromInt(100)

	incomes := []domain.Income{
		{Name: "Salary", Type: domain.FixedIncome, Amount: &salary, Frequency: domain.MonthlyIncome},
		{Name: "Side gig", Type: domain.VariableIncome, Amount: &weekly, Frequency: domain.WeeklyIncome},
		{Name: "Unknown", Type: domain.VariableIncome, Frequency: domain.MonthlyIncome},
	}

	got := domain.ProjectMonthlyIncome(incomes)
	want := salary.Add(weekly.Mul(decimal.NewFromFloat(4.33)))
	assert.True(t, got.Equal(want), "projected %s, want %s", got, want)
}

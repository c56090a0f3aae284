package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeType distinguishes steady salaries from fluctuating income sources.
type IncomeType string

const (
	FixedIncome    IncomeType = "fixed"
	VariableIncome IncomeType = "variable"
)

// IncomeFrequency is how often an income source pays out.
type IncomeFrequency string

const (
	WeeklyIncome   IncomeFrequency = "weekly"
	BiWeeklyIncome IncomeFrequency = "biWeekly"
	MonthlyIncome  IncomeFrequency = "monthly"
	YearlyIncome   IncomeFrequency = "yearly"
)

// MonthlyMultiplier converts a per-payout amount into a monthly figure.
func (f IncomeFrequency) MonthlyMultiplier() decimal.Decimal {
	switch f {
	case WeeklyIncome:
		return decimal.NewFromFloat(4.33)
	case BiWeeklyIncome:
		return decimal.NewFromFloat(2.17)
	case YearlyIncome:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(12))
	default:
		return decimal.NewFromInt(1)
	}
}

// Income is a recurring income source. Amount may be unset for variable
// sources whose payout is not known in advance.
type Income struct {
	IncomeID        string           `json:"incomeID"`
	Name            string           `json:"name"`
	Type            IncomeType       `json:"type"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Frequency       IncomeFrequency  `json:"frequency"`
	PaymentMethodID string           `json:"paymentMethodID"` // optional
	CreatedAt       time.Time        `json:"createdAt"`
}

// ProjectMonthlyIncome sums the monthly-equivalent amounts of all income
// sources, skipping those without a known amount.
func ProjectMonthlyIncome(incomes []Income) decimal.Decimal {
	total := decimal.Zero
	for _, income := range incomes {
		if income.Amount == nil {
			continue
		}
		total = total.Add(income.Amount.Mul(income.Frequency.MonthlyMultiplier()))
	}
	return total
}

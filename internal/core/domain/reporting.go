package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySpend is one row of the monthly per-category breakdown.
type CategorySpend struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthTotal is one point of the N-month spending trend.
type MonthTotal struct {
	Month time.Time       `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DebtSummary aggregates the debt dashboard figures.
type DebtSummary struct {
	TotalDebtAmount      decimal.Decimal `json:"totalDebtAmount"`
	ActiveDebtCount      int             `json:"activeDebtCount"`
	UpcomingPaymentCount int             `json:"upcomingPaymentCount"`
}

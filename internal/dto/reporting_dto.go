package dto

import (
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

// CategorySpendResponse is one row of the monthly per-category breakdown,
// sorted descending by total.
type CategorySpendResponse struct {
	Category CategoryResponse `json:"category"`
	Total    decimal.Decimal  `json:"total"`
}

// MonthlyBreakdownResponse is the per-category breakdown for one month.
type MonthlyBreakdownResponse struct {
	Month      string                  `json:"month"`
	Total      decimal.Decimal         `json:"total"`
	Categories []CategorySpendResponse `json:"categories"`
}

// MonthTotalResponse is one point of the spending trend.
type MonthTotalResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TrendResponse is the qualifying spend of the most recent N months,
// oldest to newest.
type TrendResponse struct {
	Months []MonthTotalResponse `json:"months"`
}

// ToCategorySpendResponses converts the domain breakdown rows.
func ToCategorySpendResponses(rows []domain.CategorySpend) []CategorySpendResponse {
	out := make([]CategorySpendResponse, 0, len(rows))
	for i := range rows {
		out = append(out, CategorySpendResponse{
			Category: ToCategoryResponse(&rows[i].Category),
			Total:    rows[i].Total,
		})
	}
	return out
}

// ToTrendResponse converts the domain trend points.
func ToTrendResponse(points []domain.MonthTotal) TrendResponse {
	months := make([]MonthTotalResponse, 0, len(points))
	for _, p := range points {
		months = append(months, MonthTotalResponse{
			Month: p.Month.Format(monthLayout),
			Total: p.Total,
		})
	}
	return TrendResponse{Months: months}
}

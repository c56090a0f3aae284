package dto

import (
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest sets the cap for a (category, month) pair; an existing
// budget for the pair is updated in place.
type SetBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Month      time.Time       `json:"month" binding:"required"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Month      time.Time       `json:"month"`
}

// BudgetProgressResponse carries the unclamped spend-to-budget ratio for a
// category and month. Ratio exceeds 1.0 when over budget and is 0 when no
// budget is configured; display clamping is the caller's concern.
type BudgetProgressResponse struct {
	CategoryID string  `json:"categoryID"`
	Month      string  `json:"month"`
	Ratio      float64 `json:"ratio"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Month:      b.Month,
	}
}

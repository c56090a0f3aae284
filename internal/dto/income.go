package dto

import (
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to create an income source.
// Amount may be omitted for variable sources.
type CreateIncomeRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Type            domain.IncomeType      `json:"type" binding:"required,oneof=fixed variable"`
	Amount          *decimal.Decimal       `json:"amount"`
	Frequency       domain.IncomeFrequency `json:"frequency" binding:"required,oneof=weekly biWeekly monthly yearly"`
	PaymentMethodID string                 `json:"paymentMethodID"`
}

// IncomeResponse defines the data returned for an income source.
type IncomeResponse struct {
	IncomeID        string                 `json:"incomeID"`
	Name            string                 `json:"name"`
	Type            domain.IncomeType      `json:"type"`
	Amount          *decimal.Decimal       `json:"amount,omitempty"`
	Frequency       domain.IncomeFrequency `json:"frequency"`
	PaymentMethodID string                 `json:"paymentMethodID,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// MonthlyIncomeResponse carries the projected monthly income across all sources.
type MonthlyIncomeResponse struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
}

// ToIncomeResponse converts a domain.Income to its response DTO.
func ToIncomeResponse(i *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:        i.IncomeID,
		Name:            i.Name,
		Type:            i.Type,
		Amount:          i.Amount,
		Frequency:       i.Frequency,
		PaymentMethodID: i.PaymentMethodID,
		CreatedAt:       i.CreatedAt,
	}
}

// ToIncomeResponses converts a slice of income sources.
func ToIncomeResponses(incomes []domain.Income) []IncomeResponse {
	out := make([]IncomeResponse, 0, len(incomes))
	for i := range incomes {
		out = append(out, ToIncomeResponse(&incomes[i]))
	}
	return out
}

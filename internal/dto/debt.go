package dto

import (
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to create a debt with a freshly
// generated installment schedule. TotalAmount may be omitted when unknown.
type CreateDebtRequest struct {
	Name              string           `json:"name" binding:"required"`
	TotalAmount       *decimal.Decimal `json:"totalAmount"`
	InstallmentCount  int              `json:"installmentCount" binding:"required,min=1"`
	StartDate         time.Time        `json:"startDate"`
	Description       string           `json:"description"`
	SharedWithPartner bool             `json:"sharedWithPartner"`
	CreatedBy         string           `json:"createdBy"`
}

// UpdateDebtRequest defines the data allowed for editing a debt. Changing
// TotalAmount or InstallmentCount regenerates the schedule and discards any
// partial payment state.
type UpdateDebtRequest struct {
	Name              *string          `json:"name"`
	TotalAmount       *decimal.Decimal `json:"totalAmount"`
	InstallmentCount  *int             `json:"installmentCount" binding:"omitempty,min=1"`
	Description       *string          `json:"description"`
	SharedWithPartner *bool            `json:"sharedWithPartner"`
}

// RegisterPaymentRequest registers a payment against one installment. When
// Amount is omitted the installment's nominal amount is used.
type RegisterPaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// InstallmentResponse defines the data returned for one installment.
type InstallmentResponse struct {
	Number     int              `json:"number"`
	DueDate    time.Time        `json:"dueDate"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	PaidAmount *decimal.Decimal `json:"paidAmount,omitempty"`
	PaidDate   *time.Time       `json:"paidDate,omitempty"`
	ExpenseID  string           `json:"expenseID,omitempty"`
	IsPaid     bool             `json:"isPaid"`
}

// DebtResponse defines the data returned for a debt, including the derived
// progress, remaining amount and next payment date.
type DebtResponse struct {
	DebtID            string                `json:"debtID"`
	Name              string                `json:"name"`
	TotalAmount       *decimal.Decimal      `json:"totalAmount,omitempty"`
	InstallmentCount  int                   `json:"installmentCount"`
	StartDate         time.Time             `json:"startDate"`
	Status            domain.DebtStatus     `json:"status"`
	Description       string                `json:"description,omitempty"`
	SharedWithPartner bool                  `json:"sharedWithPartner"`
	CreatedBy         string                `json:"createdBy,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	LastModified      time.Time             `json:"lastModified"`
	Installments      []InstallmentResponse `json:"installments"`
	Progress          float64               `json:"progress"`
	RemainingAmount   *decimal.Decimal      `json:"remainingAmount,omitempty"`
	NextPaymentDate   *time.Time            `json:"nextPaymentDate,omitempty"`
}

// DebtSummaryResponse defines the debt dashboard aggregates.
type DebtSummaryResponse struct {
	TotalDebtAmount      decimal.Decimal `json:"totalDebtAmount"`
	ActiveDebtCount      int             `json:"activeDebtCount"`
	UpcomingPaymentCount int             `json:"upcomingPaymentCount"`
}

// ToDebtResponse converts a domain.Debt to its response DTO.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	installments := make([]InstallmentResponse, 0, len(d.Installments))
	for _, inst := range d.Installments {
		installments = append(installments, InstallmentResponse{
			Number:     inst.Number,
			DueDate:    inst.DueDate,
			Amount:     inst.Amount,
			PaidAmount: inst.PaidAmount,
			PaidDate:   inst.PaidDate,
			ExpenseID:  inst.ExpenseID,
			IsPaid:     inst.IsPaid(),
		})
	}
	return DebtResponse{
		DebtID:            d.DebtID,
		Name:              d.Name,
		TotalAmount:       d.TotalAmount,
		InstallmentCount:  d.InstallmentCount,
		StartDate:         d.StartDate,
		Status:            d.Status,
		Description:       d.Description,
		SharedWithPartner: d.SharedWithPartner,
		CreatedBy:         d.CreatedBy,
		CreatedAt:         d.CreatedAt,
		LastModified:      d.LastModified,
		Installments:      installments,
		Progress:          d.Progress(),
		RemainingAmount:   d.RemainingAmount(),
		NextPaymentDate:   d.NextPaymentDate(),
	}
}

// ToDebtResponses converts a slice of debts.
func ToDebtResponses(debts []domain.Debt) []DebtResponse {
	out := make([]DebtResponse, 0, len(debts))
	for i := range debts {
		out = append(out, ToDebtResponse(&debts[i]))
	}
	return out
}

// ToDebtSummaryResponse converts the domain aggregate to its response DTO.
func ToDebtSummaryResponse(s domain.DebtSummary) DebtSummaryResponse {
	return DebtSummaryResponse{
		TotalDebtAmount:      s.TotalDebtAmount,
		ActiveDebtCount:      s.ActiveDebtCount,
		UpcomingPaymentCount: s.UpcomingPaymentCount,
	}
}

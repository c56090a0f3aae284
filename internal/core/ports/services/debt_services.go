package services

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// DebtReaderSvc defines read operations for debts and their derived figures.
type DebtReaderSvc interface {
	// GetDebtByID retrieves a specific debt by its unique identifier.
	GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebts retrieves all debts ordered by the given criteria.
	ListDebts(ctx context.Context, criteria domain.DebtSortCriteria) ([]domain.Debt, error)

	// Summary aggregates the debt dashboard figures.
	Summary(ctx context.Context) (*domain.DebtSummary, error)
}

// DebtWriterSvc defines write operations for debts.
type DebtWriterSvc interface {
	// CreateDebt persists a new debt with a freshly generated schedule.
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error)

	// UpdateDebt edits a debt; amount or installment count changes regenerate
	// the schedule and discard payment state.
	UpdateDebt(ctx context.Context, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)

	// DeleteDebt removes a debt and its embedded installments.
	DeleteDebt(ctx context.Context, debtID string) error
}

// DebtPaymentSvc defines the payment state transitions.
type DebtPaymentSvc interface {
	// RegisterPayment marks an installment paid, defaulting to its nominal
	// amount when amount is nil. An unknown installment number is a silent
	// no-op. When all installments become paid the debt status flips to paid.
	RegisterPayment(ctx context.Context, debtID string, installmentNumber int, amount *decimal.Decimal) (*domain.Debt, error)

	// UndoPayment reverses a registered payment, deleting the linked expense,
	// and unconditionally resets the debt status to pending.
	UndoPayment(ctx context.Context, debtID string, installmentNumber int) (*domain.Debt, error)
}

// DebtSvcFacade combines all debt-related service interfaces.
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
	DebtPaymentSvc
}

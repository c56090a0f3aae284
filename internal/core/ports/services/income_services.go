package services

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// IncomeSvcFacade manages income sources and their monthly projection.
type IncomeSvcFacade interface {
	// GetIncomeByID retrieves a specific income source.
	GetIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// ListIncomes retrieves all income sources.
	ListIncomes(ctx context.Context) ([]domain.Income, error)

	// CreateIncome persists a new income source.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Income, error)

	// DeleteIncome removes an income source.
	DeleteIncome(ctx context.Context, incomeID string) error

	// ProjectMonthlyIncome sums the monthly-equivalent amounts of all sources.
	ProjectMonthlyIncome(ctx context.Context) (decimal.Decimal, error)
}

// PaymentMethodSvcFacade manages payment methods.
type PaymentMethodSvcFacade interface {
	// GetPaymentMethodByID retrieves a specific payment method.
	GetPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves all payment methods.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)

	// CreatePaymentMethod persists a new payment method.
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error)

	// DeletePaymentMethod removes a payment method.
	DeletePaymentMethod(ctx context.Context, paymentMethodID string) error
}

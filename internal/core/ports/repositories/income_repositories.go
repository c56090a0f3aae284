package repositories

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
)

// IncomeRepository provides access to the incomes collection.
type IncomeRepository interface {
	// FindIncomeByID retrieves a specific income source by its unique identifier.
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// ListIncomes retrieves the current snapshot of all income sources.
	ListIncomes(ctx context.Context) ([]domain.Income, error)

	// SaveIncome upserts an income document.
	SaveIncome(ctx context.Context, income domain.Income) error

	// DeleteIncome removes an income document.
	DeleteIncome(ctx context.Context, incomeID string) error
}

// PaymentMethodRepository provides access to the payment methods collection.
type PaymentMethodRepository interface {
	// FindPaymentMethodByID retrieves a specific payment method by its unique identifier.
	FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves the current snapshot of all payment methods.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)

	// SavePaymentMethod upserts a payment method document.
	SavePaymentMethod(ctx context.Context, paymentMethod domain.PaymentMethod) error

	// DeletePaymentMethod removes a payment method document.
	DeletePaymentMethod(ctx context.Context, paymentMethodID string) error
}

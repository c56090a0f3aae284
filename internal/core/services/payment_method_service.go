package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
)

// paymentMethodService manages payment methods.
type paymentMethodService struct {
	BaseService
	paymentMethodRepo portsrepo.PaymentMethodRepository
}

// NewPaymentMethodService creates a new payment method service.
func NewPaymentMethodService(paymentMethodRepo portsrepo.PaymentMethodRepository) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{paymentMethodRepo: paymentMethodRepo}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

// GetPaymentMethodByID retrieves a specific payment method.
func (s *paymentMethodService) GetPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	return s.paymentMethodRepo.FindPaymentMethodByID(ctx, paymentMethodID)
}

// ListPaymentMethods retrieves all payment methods.
func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.paymentMethodRepo.ListPaymentMethods(ctx)
}

// CreatePaymentMethod persists a new payment method.
func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	paymentMethod := domain.PaymentMethod{
		PaymentMethodID: uuid.NewString(),
		Name:            req.Name,
		Type:            req.Type,
		Color:           req.Color,
		LastFourDigits:  req.LastFourDigits,
		ExpiryDate:      req.ExpiryDate,
		IsDefault:       req.IsDefault,
	}
	if err := s.paymentMethodRepo.SavePaymentMethod(ctx, paymentMethod); err != nil {
		s.LogError(ctx, err, "Failed to create payment method", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}
	return &paymentMethod, nil
}

// DeletePaymentMethod removes a payment method. Accounts and expenses keep
// any dangling reference; postings for those expenses simply fall back to
// the default account.
func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, paymentMethodID string) error {
	if err := s.paymentMethodRepo.DeletePaymentMethod(ctx, paymentMethodID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment method", slog.String("payment_method_id", paymentMethodID))
		return err
	}
	return nil
}

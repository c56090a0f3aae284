package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// incomeService manages income sources.
type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepository
}

// NewIncomeService creates a new income service.
func NewIncomeService(incomeRepo portsrepo.IncomeRepository) portssvc.IncomeSvcFacade {
	return &incomeService{incomeRepo: incomeRepo}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// GetIncomeByID retrieves a specific income source.
func (s *incomeService) GetIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	return s.incomeRepo.FindIncomeByID(ctx, incomeID)
}

// ListIncomes retrieves all income sources.
func (s *incomeService) ListIncomes(ctx context.Context) ([]domain.Income, error) {
	return s.incomeRepo.ListIncomes(ctx)
}

// CreateIncome persists a new income source. Fixed sources must carry an
// amount; variable sources may leave it unset.
func (s *incomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Income, error) {
	if req.Type == domain.FixedIncome && req.Amount == nil {
		return nil, fmt.Errorf("%w: fixed income requires an amount", apperrors.ErrValidation)
	}
	income := domain.Income{
		IncomeID:        uuid.NewString(),
		Name:            req.Name,
		Type:            req.Type,
		Amount:          req.Amount,
		Frequency:       req.Frequency,
		PaymentMethodID: req.PaymentMethodID,
		CreatedAt:       time.Now(),
	}
	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to create income", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save income: %w", err)
	}
	return &income, nil
}

// DeleteIncome removes an income source.
func (s *incomeService) DeleteIncome(ctx context.Context, incomeID string) error {
	if err := s.incomeRepo.DeleteIncome(ctx, incomeID); err != nil {
		s.LogError(ctx, err, "Failed to delete income", slog.String("income_id", incomeID))
		return err
	}
	return nil
}

// ProjectMonthlyIncome sums the monthly-equivalent amounts of all sources.
func (s *incomeService) ProjectMonthlyIncome(ctx context.Context) (decimal.Decimal, error) {
	incomes, err := s.incomeRepo.ListIncomes(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list incomes: %w", err)
	}
	return domain.ProjectMonthlyIncome(incomes), nil
}

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
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
	"github.com/lsotoflores/expenses_tracker_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// debtService implements the debt amortization engine.
type debtService struct {
	BaseService
	debtRepo    portsrepo.DebtRepository
	expenseRepo portsrepo.ExpenseRepository
	ledger      portssvc.LedgerSvcFacade
}

// DebtServiceOption is a functional option for configuring the debt service.
type DebtServiceOption func(*debtService)

// WithDebtDiagnostics sets the diagnostics sink for the debt service.
func WithDebtDiagnostics(diag *diagnostics.Diagnostics) DebtServiceOption {
	return func(s *debtService) {
		s.Diag = diag
	}
}

// NewDebtService creates a new debt service. Expense deletions cascade
// through the ledger so an undone payment never leaves a posting behind.
func NewDebtService(debtRepo portsrepo.DebtRepository, expenseRepo portsrepo.ExpenseRepository, ledger portssvc.LedgerSvcFacade, options ...DebtServiceOption) portssvc.DebtSvcFacade {
	svc := &debtService{
		debtRepo:    debtRepo,
		expenseRepo: expenseRepo,
		ledger:      ledger,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// CreateDebt persists a new debt with a freshly generated schedule.
func (s *debtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if req.InstallmentCount < 1 {
		return nil, fmt.Errorf("%w: installment count must be at least 1", apperrors.ErrValidation)
	}

	now := time.Now()
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = now
	}

	debt := domain.Debt{
		DebtID:            uuid.NewString(),
		Name:              req.Name,
		TotalAmount:       req.TotalAmount,
		InstallmentCount:  req.InstallmentCount,
		StartDate:         startDate,
		Status:            domain.DebtPending,
		Description:       req.Description,
		SharedWithPartner: req.SharedWithPartner,
		CreatedBy:         req.CreatedBy,
		CreatedAt:         now,
		LastModified:      now,
	}
	debt.GenerateInstallments()

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save new debt", slog.String("debt_id", debt.DebtID))
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}

	s.LogInfo(ctx, "Debt created", slog.String("debt_id", debt.DebtID), slog.Int("installments", debt.InstallmentCount))
	return &debt, nil
}

// UpdateDebt edits a debt. Changing the total amount or installment count
// regenerates the schedule from the existing start date, discarding all prior
// payment state.
func (s *debtService) UpdateDebt(ctx context.Context, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		debt.Name = *req.Name
	}
	if req.Description != nil {
		debt.Description = *req.Description
	}
	if req.SharedWithPartner != nil {
		debt.SharedWithPartner = *req.SharedWithPartner
	}

	if req.TotalAmount != nil || req.InstallmentCount != nil {
		newTotal := debt.TotalAmount
		if req.TotalAmount != nil {
			newTotal = req.TotalAmount
		}
		newCount := debt.InstallmentCount
		if req.InstallmentCount != nil {
			newCount = *req.InstallmentCount
		}
		if newCount < 1 {
			return nil, fmt.Errorf("%w: installment count must be at least 1", apperrors.ErrValidation)
		}
		debt.Regenerate(newTotal, newCount)
	}

	debt.LastModified = time.Now()

	if err := s.debtRepo.SaveDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to save updated debt", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}
	return debt, nil
}

// DeleteDebt removes a debt and its embedded installments.
func (s *debtService) DeleteDebt(ctx context.Context, debtID string) error {
	if err := s.debtRepo.DeleteDebt(ctx, debtID); err != nil {
		s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		return err
	}
	s.LogInfo(ctx, "Debt deleted", slog.String("debt_id", debtID))
	return nil
}

// RegisterPayment marks an installment paid. The installment's paid amount is
// the given amount or, when omitted, its nominal amount. An unknown
// installment number is a silent no-op. When the payment completes the
// schedule the debt status flips to paid. The in-memory mutation is applied
// optimistically; a failed persistence write is logged, not rolled back.
func (s *debtService) RegisterPayment(ctx context.Context, debtID string, installmentNumber int, amount *decimal.Decimal) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	inst := debt.FindInstallment(installmentNumber)
	if inst == nil {
		s.Diag.InstallmentNotFound()
		s.LogWarn(ctx, "Payment for unknown installment ignored",
			slog.String("debt_id", debtID), slog.Int("installment", installmentNumber))
		return debt, nil
	}

	if inst.IsPaid() {
		// Re-registering would orphan the previously linked expense.
		// Undo the payment first to change its amount.
		s.LogWarn(ctx, "Payment for already-paid installment ignored",
			slog.String("debt_id", debtID), slog.Int("installment", installmentNumber))
		return debt, nil
	}

	paidAmount := amount
	if paidAmount == nil {
		paidAmount = inst.Amount
	}
	if paidAmount == nil {
		// Neither an explicit amount nor a nominal amount to default to.
		s.LogWarn(ctx, "Payment without amount on a debt with unknown total ignored",
			slog.String("debt_id", debtID), slog.Int("installment", installmentNumber))
		return debt, nil
	}

	now := time.Now()
	paid := *paidAmount
	inst.PaidAmount = &paid
	inst.PaidDate = &now

	expense := domain.Expense{
		ExpenseID: uuid.NewString(),
		Name:      fmt.Sprintf("%s (installment %d/%d)", debt.Name, inst.Number, debt.InstallmentCount),
		Amount:    paid,
		Date:      now,
		Notes:     debt.Description,
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save installment expense", slog.String("debt_id", debtID))
	} else {
		inst.ExpenseID = expense.ExpenseID
	}

	if debt.AllPaid() {
		debt.Status = domain.DebtPaid
	}
	debt.LastModified = now

	if err := s.debtRepo.SaveDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to persist payment", slog.String("debt_id", debtID), slog.Int("installment", installmentNumber))
	}

	s.LogInfo(ctx, "Payment registered",
		slog.String("debt_id", debtID),
		slog.Int("installment", installmentNumber),
		slog.String("amount", utils.FormatAmount(paid)),
		slog.String("status", string(debt.Status)))
	return debt, nil
}

// UndoPayment reverses a registered payment: it clears the installment's paid
// amount, paid date and linked expense, cascade-deletes the expense together
// with any ledger posting it acquired, and unconditionally resets the debt
// status to pending without rechecking the other installments. That asymmetry with RegisterPayment's all-satisfied
// check is the authoritative status-transition rule.
func (s *debtService) UndoPayment(ctx context.Context, debtID string, installmentNumber int) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	inst := debt.FindInstallment(installmentNumber)
	if inst == nil {
		s.Diag.InstallmentNotFound()
		s.LogWarn(ctx, "Undo for unknown installment ignored",
			slog.String("debt_id", debtID), slog.Int("installment", installmentNumber))
		return debt, nil
	}

	if inst.ExpenseID != "" {
		// The expense may have been posted to the ledger in the meantime
		// (the backfill runs on every startup). Remove the posting first so
		// the transaction never outlives its source record.
		if err := s.ledger.RemoveExpensePosting(ctx, inst.ExpenseID); err != nil {
			s.LogError(ctx, err, "Failed to remove installment expense posting",
				slog.String("debt_id", debtID), slog.String("expense_id", inst.ExpenseID))
		}
		if err := s.expenseRepo.DeleteExpense(ctx, inst.ExpenseID); err != nil {
			s.LogError(ctx, err, "Failed to delete installment expense",
				slog.String("debt_id", debtID), slog.String("expense_id", inst.ExpenseID))
		}
	}

	inst.PaidAmount = nil
	inst.PaidDate = nil
	inst.ExpenseID = ""
	debt.Status = domain.DebtPending
	debt.LastModified = time.Now()

	if err := s.debtRepo.SaveDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to persist undo", slog.String("debt_id", debtID), slog.Int("installment", installmentNumber))
	}

	s.LogInfo(ctx, "Payment undone", slog.String("debt_id", debtID), slog.Int("installment", installmentNumber))
	return debt, nil
}

// GetDebtByID retrieves a specific debt.
func (s *debtService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	return s.debtRepo.FindDebtByID(ctx, debtID)
}

// ListDebts retrieves all debts ordered by the given criteria.
func (s *debtService) ListDebts(ctx context.Context, criteria domain.DebtSortCriteria) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortDebts(debts, criteria), nil
}

// Summary aggregates the debt dashboard figures: total obligation across all
// debts (with known totals), the number of still-pending debts, and how many
// unpaid installments fall due in the future.
func (s *debtService) Summary(ctx context.Context) (*domain.DebtSummary, error) {
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := domain.DebtSummary{TotalDebtAmount: decimal.Zero}
	for _, debt := range debts {
		if debt.TotalAmount != nil {
			summary.TotalDebtAmount = summary.TotalDebtAmount.Add(*debt.TotalAmount)
		}
		if debt.Status == domain.DebtPending {
			summary.ActiveDebtCount++
		}
		for _, inst := range debt.Installments {
			if !inst.IsPaid() && inst.DueDate.After(now) {
				summary.UpcomingPaymentCount++
			}
		}
	}
	return &summary, nil
}

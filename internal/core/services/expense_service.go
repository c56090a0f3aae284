package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
)

// maxSeriesInstances caps how many instances a recurring series may expand
// into, guarding against a daily interval spanning decades.
const maxSeriesInstances = 1000

// expenseService implements expense management. Recurring expenses are
// expanded eagerly into independent instances; each instance carries its own
// paid flag and its own ledger posting.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
	ledger      portssvc.LedgerSvcFacade
}

// ExpenseServiceOption is a functional option for configuring the expense service.
type ExpenseServiceOption func(*expenseService)

// WithExpenseDiagnostics sets the diagnostics sink for the expense service.
func WithExpenseDiagnostics(diag *diagnostics.Diagnostics) ExpenseServiceOption {
	return func(s *expenseService) {
		s.Diag = diag
	}
}

// NewExpenseService creates a new expense service.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepository,
	ledger portssvc.LedgerSvcFacade,
	options ...ExpenseServiceOption,
) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: expenseRepo,
		ledger:      ledger,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// GetExpenseByID retrieves a specific expense.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpenses retrieves expenses narrowed by the filter, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, filter dto.ExpenseFilter) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	out := make([]domain.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if filter.Month != nil && !domain.SameMonth(expense.Date, *filter.Month) {
			continue
		}
		if filter.Day != nil && !domain.SameDay(expense.Date, *filter.Day) {
			continue
		}
		if filter.CategoryID != nil && expense.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Recurring != nil && expense.IsRecurring != *filter.Recurring {
			continue
		}
		out = append(out, expense)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// CreateExpense records a single expense and posts it to the ledger.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		Name:            req.Name,
		Amount:          req.Amount,
		Date:            date,
		Notes:           req.Notes,
		CategoryID:      req.CategoryID,
		IsFixed:         req.IsFixed,
		PaymentMethodID: req.PaymentMethodID,
		AutoPay:         req.AutoPay,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	if err := s.ledger.RegisterExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to post expense to ledger", slog.String("expense_id", expense.ExpenseID))
	}
	return &expense, nil
}

// CreateRecurringSeries expands a recurring expense into one independently
// payable instance per occurrence between StartDate and EndDate inclusive.
// Instances are created unpaid and are not posted to the ledger until paid.
func (s *expenseService) CreateRecurringSeries(ctx context.Context, req dto.CreateRecurringExpenseRequest) ([]domain.Expense, error) {
	if !req.Interval.IsValid() {
		return nil, fmt.Errorf("%w: unknown recurrence interval %q", apperrors.ErrValidation, req.Interval)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	instances := make([]domain.Expense, 0)
	for occurrence := req.StartDate; !occurrence.After(req.EndDate); occurrence = req.Interval.Next(occurrence) {
		if len(instances) >= maxSeriesInstances {
			return nil, fmt.Errorf("%w: series expands to more than %d instances", apperrors.ErrValidation, maxSeriesInstances)
		}
		instances = append(instances, domain.Expense{
			ExpenseID:          uuid.NewString(),
			Name:               req.Name,
			Amount:             req.Amount,
			Date:               occurrence,
			Notes:              req.Notes,
			CategoryID:         req.CategoryID,
			IsRecurring:        true,
			RecurrenceInterval: req.Interval,
			IsFixed:            req.IsFixed,
			PaymentMethodID:    req.PaymentMethodID,
			AutoPay:            req.AutoPay,
		})
	}

	for _, instance := range instances {
		if err := s.expenseRepo.SaveExpense(ctx, instance); err != nil {
			s.LogError(ctx, err, "Failed to save recurring instance",
				slog.String("name", req.Name), slog.Time("date", instance.Date))
			return nil, fmt.Errorf("failed to save expense: %w", err)
		}
	}
	s.LogInfo(ctx, "Created recurring series",
		slog.String("name", req.Name), slog.Int("instances", len(instances)))
	return instances, nil
}

// UpdateExpense applies the provided fields to an existing expense. The
// recurring flag and interval are fixed at creation; changing the shape of a
// series means recreating it.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	if req.CategoryID != nil {
		expense.CategoryID = *req.CategoryID
	}
	if req.IsFixed != nil {
		expense.IsFixed = *req.IsFixed
	}
	if req.PaymentMethodID != nil {
		expense.PaymentMethodID = *req.PaymentMethodID
	}
	if req.AutoPay != nil {
		expense.AutoPay = *req.AutoPay
	}

	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return expense, nil
}

// DeleteExpense removes an expense together with its ledger posting, so the
// affected account balance snaps back.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.ledger.RemoveExpensePosting(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to remove expense posting", slog.String("expense_id", expenseID))
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	return nil
}

// MarkExpensePaid flips a recurring instance to paid and posts it to the
// ledger. Marking an already-paid instance is a no-op. Non-recurring
// expenses have no paid flag to flip.
func (s *expenseService) MarkExpensePaid(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if !expense.IsRecurring {
		return nil, fmt.Errorf("%w: expense %s is not recurring", apperrors.ErrValidation, expenseID)
	}
	if expense.IsPaid {
		return expense, nil
	}

	expense.IsPaid = true
	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to mark expense paid", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	if err := s.ledger.RegisterExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to post paid expense to ledger", slog.String("expense_id", expenseID))
	}
	return expense, nil
}

// ApplyAutomaticPayments marks every unpaid auto-pay recurring instance whose
// occurrence date falls on the given day as paid. Returns how many instances
// were flipped; individual failures are logged and skipped so one bad
// document does not block the rest of the day's payments.
func (s *expenseService) ApplyAutomaticPayments(ctx context.Context, now time.Time) (int, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	applied := 0
	for _, expense := range expenses {
		if !expense.IsRecurring || !expense.AutoPay || expense.IsPaid {
			continue
		}
		if !domain.SameDay(expense.Date, now) {
			continue
		}
		if _, err := s.MarkExpensePaid(ctx, expense.ExpenseID); err != nil {
			s.LogError(ctx, err, "Automatic payment failed", slog.String("expense_id", expense.ExpenseID))
			continue
		}
		applied++
	}

	if applied > 0 {
		s.LogInfo(ctx, "Applied automatic payments", slog.Int("count", applied))
	}
	return applied, nil
}

package services

import (
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
)

// NewServiceContainer wires the repositories into the full set of application
// services. All services share one diagnostics sink so the permissive no-op
// paths stay observable in aggregate.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, diag *diagnostics.Diagnostics) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.AccountRepo, repos.TransactionRepo, repos.ExpenseRepo,
		WithLedgerDiagnostics(diag))

	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo, repos.TransactionRepo,
			WithAccountDiagnostics(diag)),
		Ledger: ledger,
		Expense: NewExpenseService(repos.ExpenseRepo, ledger,
			WithExpenseDiagnostics(diag)),
		Category: NewCategoryService(repos.CategoryRepo, repos.ExpenseRepo,
			WithCategoryDiagnostics(diag)),
		Budget: NewBudgetService(repos.ExpenseRepo, repos.CategoryRepo, repos.BudgetRepo,
			WithBudgetDiagnostics(diag)),
		Debt: NewDebtService(repos.DebtRepo, repos.ExpenseRepo, ledger,
			WithDebtDiagnostics(diag)),
		Income:        NewIncomeService(repos.IncomeRepo),
		PaymentMethod: NewPaymentMethodService(repos.PaymentMethodRepo),
	}
}

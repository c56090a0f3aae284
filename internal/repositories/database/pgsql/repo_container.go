package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/events"
)

// NewRepositoryProvider wires all document repositories over one pool. The
// publisher may be nil when no AMQP broker is configured; the change feed
// then stays in-process only.
func NewRepositoryProvider(dbPool *pgxpool.Pool, diag *diagnostics.Diagnostics, publisher *events.Publisher) portsrepo.RepositoryProvider {
	notifier := NewChangeNotifier(publisher)
	base := BaseRepository{
		Pool:     dbPool,
		Notifier: notifier,
		Diag:     diag,
	}

	return portsrepo.RepositoryProvider{
		AccountRepo:       newPgxAccountRepository(base),
		TransactionRepo:   newPgxTransactionRepository(base),
		ExpenseRepo:       newPgxExpenseRepository(base),
		CategoryRepo:      newPgxCategoryRepository(base),
		BudgetRepo:        newPgxBudgetRepository(base),
		DebtRepo:          newPgxDebtRepository(base),
		IncomeRepo:        newPgxIncomeRepository(base),
		PaymentMethodRepo: newPgxPaymentMethodRepository(base),
		Feed:              notifier,
	}
}

// Package repositories defines the persistence collaborator contracts the
// core services depend on. Entities live in a remote document store; each
// repository exposes the full collection as an in-memory snapshot plus
// fire-and-forget style upsert/delete operations. Services receive these
// interfaces at construction and never reach a shared singleton.
package repositories

// RepositoryProvider bundles the per-collection repositories for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo       AccountRepository
	TransactionRepo   TransactionRepository
	ExpenseRepo       ExpenseRepository
	CategoryRepo      CategoryRepository
	BudgetRepo        BudgetRepository
	DebtRepo          DebtRepository
	IncomeRepo        IncomeRepository
	PaymentMethodRepo PaymentMethodRepository
	Feed              ChangeFeed
}

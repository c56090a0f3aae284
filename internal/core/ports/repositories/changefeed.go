package repositories

import "context"

// Collection names the document collections of the store. They match the
// collection names the mobile client subscribes to.
type Collection string

const (
	CollectionAccounts       Collection = "accounts"
	CollectionTransactions   Collection = "transactions"
	CollectionExpenses       Collection = "expenses"
	CollectionCategories     Collection = "categories"
	CollectionBudgets        Collection = "budgets"
	CollectionDebts          Collection = "debts"
	CollectionIncomes        Collection = "incomes"
	CollectionPaymentMethods Collection = "paymentMethods"
)

// ChangeFeed is the observer contract over the document store: every write
// to a collection produces a change signal, and consumers re-pull the full
// snapshot and re-derive computed state rather than patching incrementally.
// Repeated signals for the same snapshot must be harmless (the derivations
// are deterministic over the snapshot they read).
type ChangeFeed interface {
	// Watch returns a channel that receives the name of each collection that
	// changes, until ctx is done. Slow consumers may observe coalesced
	// signals; a signal guarantees at least one change since the last read.
	Watch(ctx context.Context) <-chan Collection
}

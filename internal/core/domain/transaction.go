package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType determines the sign a transaction contributes to an
// account balance: income adds, expense and debt payments subtract.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
	TransactionDebt    TransactionType = "debt"
)

// Transaction is an immutable signed ledger entry posted against an account.
// Amount holds the unsigned magnitude; the sign is determined by Type.
// At most one transaction may reference a given expense (no duplicate postings).
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	ExpenseID     string          `json:"expenseID"` // optional link to the originating expense
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"categoryID"` // optional
}

// IsIncoming reports whether the transaction increases the account balance.
func (t Transaction) IsIncoming() bool {
	return t.Type == TransactionIncome
}

// SignedAmount returns the amount with its balance-effect sign applied.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsIncoming() {
		return t.Amount
	}
	return t.Amount.Neg()
}

package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a monetary container.
type AccountType string

const (
	Checking AccountType = "checking"
	Savings  AccountType = "savings"
	Credit   AccountType = "credit"
	Cash     AccountType = "cash"
)

// Account represents a monetary container with a running balance.
// CurrentBalance is derived state: it must always equal InitialBalance plus the
// sum of signed transaction amounts posted against this account, and is
// recomputed from the ledger after every transaction mutation.
type Account struct {
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	Type             AccountType     `json:"type"`
	InitialBalance   decimal.Decimal `json:"initialBalance"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	CurrencyCode     string          `json:"currencyCode"`
	Color            string          `json:"color"`
	PaymentMethodIDs []string        `json:"paymentMethodIDs"`
	IsDefault        bool            `json:"isDefault"`
}

// HasPaymentMethod reports whether the given payment method is linked to this account.
func (a Account) HasPaymentMethod(paymentMethodID string) bool {
	for _, id := range a.PaymentMethodIDs {
		if id == paymentMethodID {
			return true
		}
	}
	return false
}

// DefaultAccount picks the account new postings fall back to: the first account
// flagged as default, else the first account at all. Returns nil when the slice
// is empty.
func DefaultAccount(accounts []Account) *Account {
	for i := range accounts {
		if accounts[i].IsDefault {
			return &accounts[i]
		}
	}
	if len(accounts) > 0 {
		return &accounts[0]
	}
	return nil
}

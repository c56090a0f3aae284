package domain

import "time"

// PaymentMethodType classifies how a payment is made.
type PaymentMethodType string

const (
	CreditCard  PaymentMethodType = "creditCard"
	DebitCard   PaymentMethodType = "debitCard"
	BankAccount PaymentMethodType = "bankAccount"
	CashPayment PaymentMethodType = "cash"
	OtherMethod PaymentMethodType = "other"
)

// PaymentMethod is a way of paying that may be linked to an account. Expenses
// carrying a payment method post to the account that owns it.
type PaymentMethod struct {
	PaymentMethodID string            `json:"paymentMethodID"`
	Name            string            `json:"name"`
	Type            PaymentMethodType `json:"type"`
	Color           string            `json:"color"`
	LastFourDigits  string            `json:"lastFourDigits,omitempty"`
	ExpiryDate      *time.Time        `json:"expiryDate,omitempty"`
	IsDefault       bool              `json:"isDefault"`
}

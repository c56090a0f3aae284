package dto

import (
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name             string             `json:"name" binding:"required"`
	Type             domain.AccountType `json:"type" binding:"required,oneof=checking savings credit cash"`
	InitialBalance   decimal.Decimal    `json:"initialBalance"`
	CurrencyCode     string             `json:"currencyCode" binding:"required,len=3"`
	Color            string             `json:"color" binding:"omitempty,hexcolor"`
	PaymentMethodIDs []string           `json:"paymentMethodIDs"`
	IsDefault        bool               `json:"isDefault"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name             *string   `json:"name"`
	Color            *string   `json:"color" binding:"omitempty,hexcolor"`
	PaymentMethodIDs *[]string `json:"paymentMethodIDs"`
	IsDefault        *bool     `json:"isDefault"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string             `json:"accountID"`
	Name             string             `json:"name"`
	Type             domain.AccountType `json:"type"`
	InitialBalance   decimal.Decimal    `json:"initialBalance"`
	CurrentBalance   decimal.Decimal    `json:"currentBalance"`
	CurrencyCode     string             `json:"currencyCode"`
	Color            string             `json:"color"`
	PaymentMethodIDs []string           `json:"paymentMethodIDs"`
	IsDefault        bool               `json:"isDefault"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        a.AccountID,
		Name:             a.Name,
		Type:             a.Type,
		InitialBalance:   a.InitialBalance,
		CurrentBalance:   a.CurrentBalance,
		CurrencyCode:     a.CurrencyCode,
		Color:            a.Color,
		PaymentMethodIDs: a.PaymentMethodIDs,
		IsDefault:        a.IsDefault,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, ToAccountResponse(&accounts[i]))
	}
	return out
}

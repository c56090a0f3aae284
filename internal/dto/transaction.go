package dto

import (
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to append a ledger entry.
// Amount is the unsigned magnitude; the sign follows from Type.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	ExpenseID   string                 `json:"expenseID"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense debt"`
	Date        time.Time              `json:"date"`
	Description string                 `json:"description"`
	CategoryID  string                 `json:"categoryID"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	ExpenseID     string                 `json:"expenseID,omitempty"`
	AccountID     string                 `json:"accountID"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Date          time.Time              `json:"date"`
	Description   string                 `json:"description"`
	CategoryID    string                 `json:"categoryID,omitempty"`
}

// ListTransactionsResponse is a page of ledger entries with a continuation
// token for the next page; NextToken is empty on the last page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		ExpenseID:     t.ExpenseID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		Type:          t.Type,
		Date:          t.Date,
		Description:   t.Description,
		CategoryID:    t.CategoryID,
	}
}

// ToTransactionResponses converts a slice of ledger entries.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, ToTransactionResponse(&txns[i]))
	}
	return out
}

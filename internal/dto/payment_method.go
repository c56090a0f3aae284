package dto

import (
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
)

// CreatePaymentMethodRequest defines the data needed to create a payment method.
type CreatePaymentMethodRequest struct {
	Name           string                   `json:"name" binding:"required"`
	Type           domain.PaymentMethodType `json:"type" binding:"required,oneof=creditCard debitCard bankAccount cash other"`
	Color          string                   `json:"color" binding:"omitempty,hexcolor"`
	LastFourDigits string                   `json:"lastFourDigits" binding:"omitempty,len=4,numeric"`
	ExpiryDate     *time.Time               `json:"expiryDate"`
	IsDefault      bool                     `json:"isDefault"`
}

// PaymentMethodResponse defines the data returned for a payment method.
type PaymentMethodResponse struct {
	PaymentMethodID string                   `json:"paymentMethodID"`
	Name            string                   `json:"name"`
	Type            domain.PaymentMethodType `json:"type"`
	Color           string                   `json:"color"`
	LastFourDigits  string                   `json:"lastFourDigits,omitempty"`
	ExpiryDate      *time.Time               `json:"expiryDate,omitempty"`
	IsDefault       bool                     `json:"isDefault"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod to its response DTO.
func ToPaymentMethodResponse(pm *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: pm.PaymentMethodID,
		Name:            pm.Name,
		Type:            pm.Type,
		Color:           pm.Color,
		LastFourDigits:  pm.LastFourDigits,
		ExpiryDate:      pm.ExpiryDate,
		IsDefault:       pm.IsDefault,
	}
}

// ToPaymentMethodResponses converts a slice of payment methods.
func ToPaymentMethodResponses(methods []domain.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(methods))
	for i := range methods {
		out = append(out, ToPaymentMethodResponse(&methods[i]))
	}
	return out
}

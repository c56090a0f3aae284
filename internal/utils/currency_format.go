package utils

import (
	"github.com/shopspring/decimal"
)

// monetaryPrecision is the display precision for all supported currencies.
// Every currency the app handles today (PEN, USD, MXN) uses two fraction digits.
const monetaryPrecision = 2

// FormatAmount formats a monetary amount with the standard display precision
// Example: amount 12.3456 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(monetaryPrecision).StringFixed(monetaryPrecision)
}

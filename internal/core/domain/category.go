package domain

import (
	"github.com/shopspring/decimal"
)

// Category labels expenses for grouping and budgeting.
type Category struct {
	CategoryID    string           `json:"categoryID"`
	Name          string           `json:"name"`
	Color         string           `json:"color"` // hex string, e.g. "#FF6B6B"
	Icon          string           `json:"icon"`
	DefaultBudget *decimal.Decimal `json:"defaultBudget,omitempty"`
}

func defaultBudget(amount int64) *decimal.Decimal {
	d := decimal.NewFromInt(amount)
	return &d
}

// DefaultCategories is the starter set seeded when the categories collection
// is empty on first sync.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Comida", Color: "#FF6B6B", Icon: "cart", DefaultBudget: defaultBudget(500)},
		{Name: "Transporte", Color: "#4ECDC4", Icon: "car", DefaultBudget: defaultBudget(200)},
		{Name: "Entretenimiento", Color: "#45B7D1", Icon: "tv", DefaultBudget: defaultBudget(150)},
		{Name: "Compras", Color: "#96CEB4", Icon: "bag", DefaultBudget: defaultBudget(300)},
		{Name: "Servicios", Color: "#D4A373", Icon: "bolt", DefaultBudget: defaultBudget(200)},
		{Name: "Renta", Color: "#264653", Icon: "house", DefaultBudget: defaultBudget(1200)},
	}
}

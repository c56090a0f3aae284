package dto

import (
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name          string           `json:"name" binding:"required"`
	Color         string           `json:"color" binding:"required,hexcolor"`
	Icon          string           `json:"icon" binding:"required"`
	DefaultBudget *decimal.Decimal `json:"defaultBudget"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name          *string          `json:"name"`
	Color         *string          `json:"color" binding:"omitempty,hexcolor"`
	Icon          *string          `json:"icon"`
	DefaultBudget *decimal.Decimal `json:"defaultBudget"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string           `json:"categoryID"`
	Name          string           `json:"name"`
	Color         string           `json:"color"`
	Icon          string           `json:"icon"`
	DefaultBudget *decimal.Decimal `json:"defaultBudget,omitempty"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		Name:          c.Name,
		Color:         c.Color,
		Icon:          c.Icon,
		DefaultBudget: c.DefaultBudget,
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, ToCategoryResponse(&categories[i]))
	}
	return out
}

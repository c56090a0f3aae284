package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/lsotoflores/expenses_tracker_backend/internal/middleware"
)

// budgetHandler handles HTTP requests related to per-category monthly budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.PUT("", h.setBudget)
		budgets.GET("", h.getBudget)
		budgets.DELETE("", h.removeBudget)
	}
}

// setBudget godoc
// @Summary Set the budget for a category and month
// @Description Creates or updates the single budget of the (category, month) pair
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.SetBudgetRequest true "Budget details"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to set budget"
// @Router /budgets [put]
func (h *budgetHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.SetBudget(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting budget", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found for budget", slog.String("category_id", req.CategoryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			logger.Error("Failed to set budget in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set budget"})
		}
		return
	}

	logger.Info("Budget set successfully", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// getBudget godoc
// @Summary Get the budget for a category and month
// @Description Retrieves the budget of the (category, month) pair
// @Tags budgets
// @Produce  json
// @Param   categoryID query string true "Category ID"
// @Param   month query string true "Calendar month (YYYY-MM)"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 404 {object} map[string]string "No budget set for the pair"
// @Failure 500 {object} map[string]string "Failed to retrieve budget"
// @Router /budgets [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categoryID := c.Query("categoryID")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryID parameter is required"})
		return
	}
	month, ok := parseMonthQuery(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), categoryID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No budget set for this category and month"})
		} else {
			logger.Error("Failed to get budget from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// removeBudget godoc
// @Summary Remove the budget for a category and month
// @Description Deletes the budget of the (category, month) pair; a no-op when none exists
// @Tags budgets
// @Param   categoryID query string true "Category ID"
// @Param   month query string true "Calendar month (YYYY-MM)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 500 {object} map[string]string "Failed to remove budget"
// @Router /budgets [delete]
func (h *budgetHandler) removeBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categoryID := c.Query("categoryID")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryID parameter is required"})
		return
	}
	month, ok := parseMonthQuery(c)
	if !ok {
		return
	}

	if err := h.budgetService.RemoveBudget(c.Request.Context(), categoryID, month); err != nil {
		logger.Error("Failed to remove budget in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove budget"})
		return
	}

	c.Status(http.StatusNoContent)
}

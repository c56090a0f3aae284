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

// incomeHandler handles HTTP requests related to income sources.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

// newIncomeHandler creates a new incomeHandler.
func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{
		incomeService: is,
	}
}

// registerIncomeRoutes registers routes related to income sources.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("", h.listIncomes)
		incomes.GET("/:id", h.getIncome)
		incomes.DELETE("/:id", h.deleteIncome)
	}
}

// createIncome godoc
// @Summary Create a new income source
// @Description Creates an income source; fixed sources require an amount
// @Tags incomes
// @Accept  json
// @Produce  json
// @Param   income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create income"
// @Router /incomes [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating income", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create income in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create income"})
		}
		return
	}

	logger.Info("Income created successfully", slog.String("income_id", income.IncomeID))
	c.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

// listIncomes godoc
// @Summary List income sources
// @Description Retrieves all income sources
// @Tags incomes
// @Produce  json
// @Success 200 {array} dto.IncomeResponse
// @Failure 500 {object} map[string]string "Failed to list incomes"
// @Router /incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	incomes, err := h.incomeService.ListIncomes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list incomes from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list incomes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponses(incomes))
}

// getIncome godoc
// @Summary Get an income source by ID
// @Description Retrieves details for a specific income source
// @Tags incomes
// @Produce  json
// @Param   id path string true "Income ID"
// @Success 200 {object} dto.IncomeResponse
// @Failure 404 {object} map[string]string "Income not found"
// @Failure 500 {object} map[string]string "Failed to retrieve income"
// @Router /incomes/{id} [get]
func (h *incomeHandler) getIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("id")

	income, err := h.incomeService.GetIncomeByID(c.Request.Context(), incomeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Income not found", slog.String("income_id", incomeID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Income not found"})
		} else {
			logger.Error("Failed to get income from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve income"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponse(income))
}

// deleteIncome godoc
// @Summary Delete an income source
// @Description Removes an income source
// @Tags incomes
// @Param   id path string true "Income ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Income not found"
// @Failure 500 {object} map[string]string "Failed to delete income"
// @Router /incomes/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("id")

	if err := h.incomeService.DeleteIncome(c.Request.Context(), incomeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Income not found for delete", slog.String("income_id", incomeID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Income not found"})
		} else {
			logger.Error("Failed to delete income in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete income"})
		}
		return
	}

	logger.Info("Income deleted successfully", slog.String("income_id", incomeID))
	c.Status(http.StatusNoContent)
}

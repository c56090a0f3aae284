package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/lsotoflores/expenses_tracker_backend/internal/middleware"
)

const monthQueryLayout = "2006-01"

// parseMonthQuery reads the required "month" query parameter (YYYY-MM). It
// writes the error response itself and reports success via the bool.
func parseMonthQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month parameter is required"})
		return time.Time{}, false
	}
	month, err := time.Parse(monthQueryLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month parameter, expected YYYY-MM"})
		return time.Time{}, false
	}
	return month, true
}

// reportingHandler handles HTTP requests for spending and income reports.
type reportingHandler struct {
	budgetService portssvc.BudgetSvcFacade
	incomeService portssvc.IncomeSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(bs portssvc.BudgetSvcFacade, is portssvc.IncomeSvcFacade) *reportingHandler {
	return &reportingHandler{
		budgetService: bs,
		incomeService: is,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, incomeService portssvc.IncomeSvcFacade) {
	h := newReportingHandler(budgetService, incomeService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.getMonthlyBreakdown)
		reports.GET("/trend", h.getTrend)
		reports.GET("/budget-progress", h.getBudgetProgress)
		reports.GET("/monthly-income", h.getMonthlyIncome)
	}
}

// getMonthlyBreakdown godoc
// @Summary Get the month's per-category spending breakdown
// @Description Groups the month's qualifying expenses by category, sorted descending by total, with the month's overall total
// @Tags reports
// @Produce  json
// @Param   month query string true "Calendar month (YYYY-MM)"
// @Success 200 {object} dto.MonthlyBreakdownResponse
// @Failure 400 {object} map[string]string "Missing or invalid month parameter"
// @Failure 500 {object} map[string]string "Failed to compute breakdown"
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month, ok := parseMonthQuery(c)
	if !ok {
		return
	}

	rows, err := h.budgetService.MonthlyExpensesByCategory(c.Request.Context(), month)
	if err != nil {
		logger.Error("Failed to compute monthly breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute breakdown"})
		return
	}

	total, err := h.budgetService.TotalMonthlyExpenses(c.Request.Context(), month)
	if err != nil {
		logger.Error("Failed to compute monthly total", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyBreakdownResponse{
		Month:      month.Format(monthQueryLayout),
		Total:      total,
		Categories: dto.ToCategorySpendResponses(rows),
	})
}

// getTrend godoc
// @Summary Get the spending trend
// @Description Returns the qualifying totals of the most recent N months including the current one, oldest to newest
// @Tags reports
// @Produce  json
// @Param   months query int false "Number of months" default(6)
// @Success 200 {object} dto.TrendResponse
// @Failure 400 {object} map[string]string "Invalid months parameter"
// @Failure 500 {object} map[string]string "Failed to compute trend"
// @Router /reports/trend [get]
func (h *reportingHandler) getTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months, err := strconv.Atoi(c.DefaultQuery("months", "6"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid months parameter"})
		return
	}

	points, err := h.budgetService.MonthlyTrend(c.Request.Context(), months)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute trend", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trend"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTrendResponse(points))
}

// getBudgetProgress godoc
// @Summary Get the spend-to-budget ratio for a category and month
// @Description Returns the unclamped ratio; it exceeds 1.0 when over budget and is 0 when no budget is set
// @Tags reports
// @Produce  json
// @Param   categoryID query string true "Category ID"
// @Param   month query string true "Calendar month (YYYY-MM)"
// @Success 200 {object} dto.BudgetProgressResponse
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 500 {object} map[string]string "Failed to compute progress"
// @Router /reports/budget-progress [get]
func (h *reportingHandler) getBudgetProgress(c *gin.Context) {
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

	ratio, err := h.budgetService.BudgetProgress(c.Request.Context(), categoryID, month)
	if err != nil {
		logger.Error("Failed to compute budget progress", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress"})
		return
	}

	c.JSON(http.StatusOK, dto.BudgetProgressResponse{
		CategoryID: categoryID,
		Month:      month.Format(monthQueryLayout),
		Ratio:      ratio,
	})
}

// getMonthlyIncome godoc
// @Summary Get the projected monthly income
// @Description Sums the monthly-equivalent amounts of all income sources
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.MonthlyIncomeResponse
// @Failure 500 {object} map[string]string "Failed to project income"
// @Router /reports/monthly-income [get]
func (h *reportingHandler) getMonthlyIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	monthly, err := h.incomeService.ProjectMonthlyIncome(c.Request.Context())
	if err != nil {
		logger.Error("Failed to project monthly income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project income"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyIncomeResponse{MonthlyIncome: monthly})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portssvc "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/services"
	"github.com/lsotoflores/expenses_tracker_backend/internal/dto"
	"github.com/lsotoflores/expenses_tracker_backend/internal/middleware"
)

// debtHandler handles HTTP requests related to debts and their payments.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

// newDebtHandler creates a new debtHandler.
func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{
		debtService: ds,
	}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/summary", h.getSummary)
		debts.GET("/:id", h.getDebt)
		debts.PUT("/:id", h.updateDebt)
		debts.DELETE("/:id", h.deleteDebt)
		debts.POST("/:id/installments/:number/payment", h.registerPayment)
		debts.DELETE("/:id/installments/:number/payment", h.undoPayment)
	}
}

// createDebt godoc
// @Summary Create a new debt
// @Description Creates a debt with a freshly generated installment schedule
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create debt"
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create debt"})
		}
		return
	}

	logger.Info("Debt created successfully", slog.String("debt_id", debt.DebtID))
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts
// @Description Retrieves all debts ordered by the requested criteria
// @Tags debts
// @Produce  json
// @Param   sortBy query string false "Sort criteria" Enums(creationDate, nextPaymentDate, progress) default(creationDate)
// @Success 200 {array} dto.DebtResponse
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	criteria := domain.DebtSortCriteria(c.DefaultQuery("sortBy", string(domain.SortByCreationDate)))

	debts, err := h.debtService.ListDebts(c.Request.Context(), criteria)
	if err != nil {
		logger.Error("Failed to list debts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list debts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponses(debts))
}

// getSummary godoc
// @Summary Get the debt dashboard summary
// @Description Aggregates total remaining amount, active debt count and upcoming payments
// @Tags debts
// @Produce  json
// @Success 200 {object} dto.DebtSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /debts/summary [get]
func (h *debtHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.debtService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute debt summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtSummaryResponse(*summary))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Description Retrieves a debt including its installment schedule and derived figures
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve debt"
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Debt not found", slog.String("debt_id", debtID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to get debt from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// updateDebt godoc
// @Summary Update a debt
// @Description Edits a debt; amount or installment count changes regenerate the schedule and discard payment state
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   debt body dto.UpdateDebtRequest true "Fields to update"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to update debt"
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), debtID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Debt not found for update", slog.String("debt_id", debtID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update debt"})
		}
		return
	}

	logger.Info("Debt updated successfully", slog.String("debt_id", debtID))
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Description Removes a debt and its embedded installments
// @Tags debts
// @Param   id path string true "Debt ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to delete debt"
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	if err := h.debtService.DeleteDebt(c.Request.Context(), debtID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Debt not found for delete", slog.String("debt_id", debtID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to delete debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete debt"})
		}
		return
	}

	logger.Info("Debt deleted successfully", slog.String("debt_id", debtID))
	c.Status(http.StatusNoContent)
}

// registerPayment godoc
// @Summary Register a payment against an installment
// @Description Marks an installment paid, defaulting to its nominal amount when the body omits one. An unknown installment number leaves the debt untouched.
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   number path int true "Installment number"
// @Param   payment body dto.RegisterPaymentRequest false "Payment details"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid installment number or request body"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to register payment"
// @Router /debts/{id}/installments/{number}/payment [post]
func (h *debtHandler) registerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid installment number"})
		return
	}

	var req dto.RegisterPaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for RegisterPayment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	debt, err := h.debtService.RegisterPayment(c.Request.Context(), debtID, number, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Debt not found for payment", slog.String("debt_id", debtID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to register payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register payment"})
		}
		return
	}

	logger.Info("Payment registered", slog.String("debt_id", debtID), slog.Int("installment", number))
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// undoPayment godoc
// @Summary Undo a registered installment payment
// @Description Reverses a payment, deletes the linked expense and resets the debt status to pending
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   number path int true "Installment number"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid installment number"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to undo payment"
// @Router /debts/{id}/installments/{number}/payment [delete]
func (h *debtHandler) undoPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid installment number"})
		return
	}

	debt, err := h.debtService.UndoPayment(c.Request.Context(), debtID, number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Debt not found for undo", slog.String("debt_id", debtID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to undo payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to undo payment"})
		}
		return
	}

	logger.Info("Payment undone", slog.String("debt_id", debtID), slog.Int("installment", number))
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

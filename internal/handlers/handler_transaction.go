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

// transactionHandler handles HTTP requests against the ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
	}
}

// registerTransactionRoutes registers routes related to the ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
	}

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/recompute", h.recomputeBalances)
		ledger.POST("/backfill", h.backfillFromExpenses)
	}
}

// createTransaction godoc
// @Summary Append a ledger entry
// @Description Appends a transaction and recomputes account balances. A transaction for an expense that already has a posting returns the existing entry.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for transaction", slog.String("account_id", req.AccountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// recomputeBalances godoc
// @Summary Recompute all account balances
// @Description Rebuilds every account's current balance from its initial balance plus the full signed ledger
// @Tags ledger
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to recompute balances"
// @Router /ledger/recompute [post]
func (h *transactionHandler) recomputeBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.ledgerService.RecomputeBalances(c.Request.Context()); err != nil {
		logger.Error("Failed to recompute balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute balances"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "balances recomputed"})
}

// backfillFromExpenses godoc
// @Summary Backfill ledger entries from expenses
// @Description Synthesizes a transaction for every expense that lacks one. Safe to re-run.
// @Tags ledger
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Failed to backfill transactions"
// @Router /ledger/backfill [post]
func (h *transactionHandler) backfillFromExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	created, err := h.ledgerService.BackfillFromExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to backfill transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to backfill transactions"})
		return
	}

	logger.Info("Ledger backfill completed", slog.Int("created", created))
	c.JSON(http.StatusOK, gin.H{"created": created})
}

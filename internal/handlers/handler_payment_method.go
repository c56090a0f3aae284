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

// paymentMethodHandler handles HTTP requests related to payment methods.
type paymentMethodHandler struct {
	paymentMethodService portssvc.PaymentMethodSvcFacade
}

// newPaymentMethodHandler creates a new paymentMethodHandler.
func newPaymentMethodHandler(ps portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{
		paymentMethodService: ps,
	}
}

// registerPaymentMethodRoutes registers routes related to payment methods.
func registerPaymentMethodRoutes(rg *gin.RouterGroup, paymentMethodService portssvc.PaymentMethodSvcFacade) {
	h := newPaymentMethodHandler(paymentMethodService)

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:id", h.getPaymentMethod)
		methods.DELETE("/:id", h.deletePaymentMethod)
	}
}

// createPaymentMethod godoc
// @Summary Create a new payment method
// @Description Creates a payment method
// @Tags payment-methods
// @Accept  json
// @Produce  json
// @Param   paymentMethod body dto.CreatePaymentMethodRequest true "Payment method details"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create payment method"
// @Router /payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.paymentMethodService.CreatePaymentMethod(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating payment method", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create payment method in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment method"})
		}
		return
	}

	logger.Info("Payment method created successfully", slog.String("payment_method_id", method.PaymentMethodID))
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Retrieves all payment methods
// @Tags payment-methods
// @Produce  json
// @Success 200 {array} dto.PaymentMethodResponse
// @Failure 500 {object} map[string]string "Failed to list payment methods"
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	methods, err := h.paymentMethodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payment methods from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment methods"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponses(methods))
}

// getPaymentMethod godoc
// @Summary Get a payment method by ID
// @Description Retrieves details for a specific payment method
// @Tags payment-methods
// @Produce  json
// @Param   id path string true "Payment method ID"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} map[string]string "Payment method not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment method"
// @Router /payment-methods/{id} [get]
func (h *paymentMethodHandler) getPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentMethodID := c.Param("id")

	method, err := h.paymentMethodService.GetPaymentMethodByID(c.Request.Context(), paymentMethodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment method not found", slog.String("payment_method_id", paymentMethodID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		} else {
			logger.Error("Failed to get payment method from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment method"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// deletePaymentMethod godoc
// @Summary Delete a payment method
// @Description Removes a payment method
// @Tags payment-methods
// @Param   id path string true "Payment method ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Payment method not found"
// @Failure 500 {object} map[string]string "Failed to delete payment method"
// @Router /payment-methods/{id} [delete]
func (h *paymentMethodHandler) deletePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentMethodID := c.Param("id")

	if err := h.paymentMethodService.DeletePaymentMethod(c.Request.Context(), paymentMethodID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment method not found for delete", slog.String("payment_method_id", paymentMethodID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		} else {
			logger.Error("Failed to delete payment method in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
		}
		return
	}

	logger.Info("Payment method deleted successfully", slog.String("payment_method_id", paymentMethodID))
	c.Status(http.StatusNoContent)
}

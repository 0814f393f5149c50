package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridlined/Itemizer/internal/apperrors"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/dto"
	"github.com/gridlined/Itemizer/internal/middleware"
)

// paymentMethodTypeHandler handles HTTP requests related to payment method types.
type paymentMethodTypeHandler struct {
	typeService portssvc.PaymentMethodTypeSvcFacade
}

func newPaymentMethodTypeHandler(ts portssvc.PaymentMethodTypeSvcFacade) *paymentMethodTypeHandler {
	return &paymentMethodTypeHandler{typeService: ts}
}

// registerPaymentMethodTypeRoutes registers routes related to payment method types.
func registerPaymentMethodTypeRoutes(rg *gin.RouterGroup, typeService portssvc.PaymentMethodTypeSvcFacade) {
	h := newPaymentMethodTypeHandler(typeService)

	types := rg.Group("/payment-method-types")
	{
		types.POST("", h.createPaymentMethodType)
		types.GET("", h.listPaymentMethodTypes)
		types.GET("/:id", h.getPaymentMethodTypeByID)
		types.PUT("/:id", h.updatePaymentMethodType)
		types.DELETE("/:id", h.deletePaymentMethodType)
	}
}

// createPaymentMethodType godoc
// @Summary Create a new payment method type
// @Tags payment-method-types
// @Accept json
// @Produce json
// @Param type body dto.CreatePaymentMethodTypeRequest true "Payment method type details"
// @Success 201 {object} dto.PaymentMethodTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create payment method type"
// @Security BearerAuth
// @Router /payment-method-types [post]
func (h *paymentMethodTypeHandler) createPaymentMethodType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentMethodTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	methodType, err := h.typeService.CreatePaymentMethodType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create payment method type in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment method type"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentMethodTypeResponse(*methodType))
}

// getPaymentMethodTypeByID godoc
// @Summary Get a payment method type by ID
// @Tags payment-method-types
// @Produce json
// @Param id path string true "Payment method type ID (UUID)"
// @Success 200 {object} dto.PaymentMethodTypeResponse
// @Failure 404 {object} map[string]string "Payment method type not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment method type"
// @Security BearerAuth
// @Router /payment-method-types/{id} [get]
func (h *paymentMethodTypeHandler) getPaymentMethodTypeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	typeID := c.Param("id")

	methodType, err := h.typeService.GetPaymentMethodTypeByID(c.Request.Context(), typeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method type not found"})
		} else {
			logger.Error("Failed to get payment method type from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment method type"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodTypeResponse(*methodType))
}

// listPaymentMethodTypes godoc
// @Summary List all payment method types
// @Tags payment-method-types
// @Produce json
// @Success 200 {array} dto.PaymentMethodTypeResponse
// @Failure 500 {object} map[string]string "Failed to list payment method types"
// @Security BearerAuth
// @Router /payment-method-types [get]
func (h *paymentMethodTypeHandler) listPaymentMethodTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.typeService.ListPaymentMethodTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payment method types from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment method types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodTypeResponses(types))
}

// updatePaymentMethodType godoc
// @Summary Update a payment method type
// @Tags payment-method-types
// @Accept json
// @Produce json
// @Param id path string true "Payment method type ID (UUID)"
// @Param type body dto.UpdatePaymentMethodTypeRequest true "Fields to update"
// @Success 200 {object} dto.PaymentMethodTypeResponse
// @Failure 404 {object} map[string]string "Payment method type not found"
// @Failure 500 {object} map[string]string "Failed to update payment method type"
// @Security BearerAuth
// @Router /payment-method-types/{id} [put]
func (h *paymentMethodTypeHandler) updatePaymentMethodType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	typeID := c.Param("id")

	var req dto.UpdatePaymentMethodTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	methodType, err := h.typeService.UpdatePaymentMethodType(c.Request.Context(), typeID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method type not found"})
		} else {
			logger.Error("Failed to update payment method type in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method type"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodTypeResponse(*methodType))
}

// deletePaymentMethodType godoc
// @Summary Delete a payment method type
// @Tags payment-method-types
// @Produce json
// @Param id path string true "Payment method type ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Payment method type not found"
// @Failure 500 {object} map[string]string "Failed to delete payment method type"
// @Security BearerAuth
// @Router /payment-method-types/{id} [delete]
func (h *paymentMethodTypeHandler) deletePaymentMethodType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	typeID := c.Param("id")

	if err := h.typeService.DeletePaymentMethodType(c.Request.Context(), typeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method type not found"})
		} else {
			logger.Error("Failed to delete payment method type in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method type"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// paymentMethodHandler handles HTTP requests related to payment methods.
type paymentMethodHandler struct {
	methodService portssvc.PaymentMethodSvcFacade
}

func newPaymentMethodHandler(ms portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{methodService: ms}
}

// registerPaymentMethodRoutes registers routes related to payment methods.
func registerPaymentMethodRoutes(rg *gin.RouterGroup, methodService portssvc.PaymentMethodSvcFacade) {
	h := newPaymentMethodHandler(methodService)

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:id", h.getPaymentMethodByID)
		methods.PUT("/:id", h.updatePaymentMethod)
		methods.DELETE("/:id", h.deletePaymentMethod)
	}
}

// createPaymentMethod godoc
// @Summary Create a new payment method
// @Description Adds a payment instrument (bank, optional last 4 digits, type)
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param method body dto.CreatePaymentMethodRequest true "Payment method details"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create payment method"
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	method, err := h.methodService.CreatePaymentMethod(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create payment method in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment method"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(*method))
}

// getPaymentMethodByID godoc
// @Summary Get a payment method by ID
// @Tags payment-methods
// @Produce json
// @Param id path string true "Payment method ID (UUID)"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} map[string]string "Payment method not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment method"
// @Security BearerAuth
// @Router /payment-methods/{id} [get]
func (h *paymentMethodHandler) getPaymentMethodByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("id")

	method, err := h.methodService.GetPaymentMethodByID(c.Request.Context(), methodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		} else {
			logger.Error("Failed to get payment method from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment method"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(*method))
}

// listPaymentMethods godoc
// @Summary List all payment methods
// @Tags payment-methods
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse
// @Failure 500 {object} map[string]string "Failed to list payment methods"
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	methods, err := h.methodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payment methods from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment methods"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponses(methods))
}

// updatePaymentMethod godoc
// @Summary Update a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param id path string true "Payment method ID (UUID)"
// @Param method body dto.UpdatePaymentMethodRequest true "Fields to update"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment method not found"
// @Failure 500 {object} map[string]string "Failed to update payment method"
// @Security BearerAuth
// @Router /payment-methods/{id} [put]
func (h *paymentMethodHandler) updatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("id")

	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	method, err := h.methodService.UpdatePaymentMethod(c.Request.Context(), methodID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update payment method in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(*method))
}

// deletePaymentMethod godoc
// @Summary Delete a payment method
// @Tags payment-methods
// @Produce json
// @Param id path string true "Payment method ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Payment method not found"
// @Failure 500 {object} map[string]string "Failed to delete payment method"
// @Security BearerAuth
// @Router /payment-methods/{id} [delete]
func (h *paymentMethodHandler) deletePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("id")

	if err := h.methodService.DeletePaymentMethod(c.Request.Context(), methodID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		} else {
			logger.Error("Failed to delete payment method in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

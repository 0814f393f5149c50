package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gridlined/Itemizer/internal/apperrors"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/dto"
	"github.com/gridlined/Itemizer/internal/middleware"
)

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// RegisterReceiptRoutes registers routes related to receipts.
func RegisterReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:id", h.getReceiptByID)
		receipts.PUT("/:id", h.updateReceipt)
		receipts.DELETE("/:id", h.deleteReceipt)
	}
}

// createReceipt godoc
// @Summary Create a new receipt
// @Description Creates a receipt with all of its line items, fees, discounts, tax charges, gratuities and payments in one transaction
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown reference"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create receipt"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create receipt"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceiptResponse(*receipt))
}

// getReceiptByID godoc
// @Summary Get a receipt by ID
// @Description Retrieves a receipt with all children and derived aggregates (subtotal, fee, discount, tax, tip, total, status)
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID (UUID)"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve receipt"
// @Security BearerAuth
// @Router /receipts/{id} [get]
func (h *receiptHandler) getReceiptByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		} else {
			logger.Error("Failed to get receipt from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(*receipt))
}

// listReceipts godoc
// @Summary List receipts
// @Description Retrieves receipts ordered by date descending then time descending, with optional date-range and supplier filters
// @Tags receipts
// @Produce json
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param supplierId query string false "Filter by supplier ID"
// @Param limit query int false "Max results (default 50)"
// @Param offset query int false "Results to skip"
// @Success 200 {array} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid date filter"
// @Failure 500 {object} map[string]string "Failed to list receipts"
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := parseListParams(c)
	params := dto.ListReceiptsParams{
		SupplierID: c.Query("supplierId"),
		Limit:      limit,
		Offset:     offset,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		params.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		params.To = &to
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list receipts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receipts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponses(receipts))
}

// updateReceipt godoc
// @Summary Update a receipt
// @Description Updates header fields; any provided line collection replaces the full existing set
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID (UUID)"
// @Param receipt body dto.UpdateReceiptRequest true "Fields to update"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown reference"
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to update receipt"
// @Security BearerAuth
// @Router /receipts/{id} [put]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), receiptID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(*receipt))
}

// deleteReceipt godoc
// @Summary Delete a receipt
// @Description Removes a receipt and all of its child rows
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to delete receipt"
// @Security BearerAuth
// @Router /receipts/{id} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), receiptID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		} else {
			logger.Error("Failed to delete receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete receipt"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

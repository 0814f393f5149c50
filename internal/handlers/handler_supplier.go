package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gridlined/Itemizer/internal/apperrors"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/dto"
	"github.com/gridlined/Itemizer/internal/middleware"
)

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// newSupplierHandler creates a new supplierHandler.
func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplierByID)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deleteSupplier)
	}
}

// parseListParams reads optional limit/offset query parameters.
func parseListParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// createSupplier godoc
// @Summary Create a new supplier
// @Description Adds a new supplier (vendor a receipt originates from)
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create supplier"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create supplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplierResponse(*supplier))
}

// getSupplierByID godoc
// @Summary Get a supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to retrieve supplier"
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplierByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			logger.Error("Failed to get supplier from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supplier"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(*supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves suppliers ordered by name
// @Tags suppliers
// @Produce json
// @Param limit query int false "Max results (default 50)"
// @Param offset query int false "Results to skip"
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parseListParams(c)

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list suppliers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suppliers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponses(suppliers))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to update supplier"
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update supplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(*supplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to delete supplier"
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), supplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			logger.Error("Failed to delete supplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

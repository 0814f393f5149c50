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

// taxHandler handles HTTP requests related to taxes.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

// newTaxHandler creates a new taxHandler.
func newTaxHandler(ts portssvc.TaxSvcFacade) *taxHandler {
	return &taxHandler{taxService: ts}
}

// registerTaxRoutes registers routes related to taxes.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)

	taxes := rg.Group("/taxes")
	{
		taxes.POST("", h.createTax)
		taxes.GET("", h.listTaxes)
		taxes.GET("/:id", h.getTaxByID)
		taxes.PUT("/:id", h.updateTax)
		taxes.DELETE("/:id", h.deleteTax)
	}
}

// createTax godoc
// @Summary Create a new tax
// @Description Adds a named tax that receipt tax charges can reference
// @Tags taxes
// @Accept json
// @Produce json
// @Param tax body dto.CreateTaxRequest true "Tax details"
// @Success 201 {object} dto.TaxResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create tax"
// @Security BearerAuth
// @Router /taxes [post]
func (h *taxHandler) createTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTax", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tax, err := h.taxService.CreateTax(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create tax in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tax"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaxResponse(*tax))
}

// getTaxByID godoc
// @Summary Get a tax by ID
// @Tags taxes
// @Produce json
// @Param id path string true "Tax ID (UUID)"
// @Success 200 {object} dto.TaxResponse
// @Failure 404 {object} map[string]string "Tax not found"
// @Failure 500 {object} map[string]string "Failed to retrieve tax"
// @Security BearerAuth
// @Router /taxes/{id} [get]
func (h *taxHandler) getTaxByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taxID := c.Param("id")

	tax, err := h.taxService.GetTaxByID(c.Request.Context(), taxID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tax not found"})
		} else {
			logger.Error("Failed to get tax from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tax"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxResponse(*tax))
}

// listTaxes godoc
// @Summary List all taxes
// @Tags taxes
// @Produce json
// @Success 200 {array} dto.TaxResponse
// @Failure 500 {object} map[string]string "Failed to list taxes"
// @Security BearerAuth
// @Router /taxes [get]
func (h *taxHandler) listTaxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	taxes, err := h.taxService.ListTaxes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list taxes from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list taxes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxResponses(taxes))
}

// updateTax godoc
// @Summary Update a tax
// @Tags taxes
// @Accept json
// @Produce json
// @Param id path string true "Tax ID (UUID)"
// @Param tax body dto.UpdateTaxRequest true "Fields to update"
// @Success 200 {object} dto.TaxResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Tax not found"
// @Failure 500 {object} map[string]string "Failed to update tax"
// @Security BearerAuth
// @Router /taxes/{id} [put]
func (h *taxHandler) updateTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taxID := c.Param("id")

	var req dto.UpdateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tax, err := h.taxService.UpdateTax(c.Request.Context(), taxID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tax not found"})
		} else {
			logger.Error("Failed to update tax in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tax"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxResponse(*tax))
}

// deleteTax godoc
// @Summary Delete a tax
// @Tags taxes
// @Produce json
// @Param id path string true "Tax ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Tax not found"
// @Failure 500 {object} map[string]string "Failed to delete tax"
// @Security BearerAuth
// @Router /taxes/{id} [delete]
func (h *taxHandler) deleteTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taxID := c.Param("id")

	if err := h.taxService.DeleteTax(c.Request.Context(), taxID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tax not found"})
		} else {
			logger.Error("Failed to delete tax in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tax"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/dto"
	"github.com/gridlined/Itemizer/internal/middleware"
)

// reportingHandler handles HTTP requests for spending reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/year", h.getCurrentYearSummary)
		reports.GET("/year/:year", h.getYearSummary)
	}
}

// getCurrentYearSummary godoc
// @Summary Current year spending summary
// @Description Year-to-date totals of purchases, fees, discounts, taxes, tips and final spend for the current calendar year
// @Tags reports
// @Produce json
// @Success 200 {object} dto.YearSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute year summary"
// @Security BearerAuth
// @Router /reports/year [get]
func (h *reportingHandler) getCurrentYearSummary(c *gin.Context) {
	h.respondWithYearSummary(c, time.Now().Year())
}

// getYearSummary godoc
// @Summary Spending summary for a given year
// @Description Totals of purchases, fees, discounts, taxes, tips and final spend for one calendar year
// @Tags reports
// @Produce json
// @Param year path int true "Calendar year, e.g. 2024"
// @Success 200 {object} dto.YearSummaryResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to compute year summary"
// @Security BearerAuth
// @Router /reports/year/{year} [get]
func (h *reportingHandler) getYearSummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	h.respondWithYearSummary(c, year)
}

func (h *reportingHandler) respondWithYearSummary(c *gin.Context, year int) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.YearSummary(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to compute year summary", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute year summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToYearSummaryResponse(*summary))
}

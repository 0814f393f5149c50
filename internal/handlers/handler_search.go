package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/dto"
	"github.com/gridlined/Itemizer/internal/middleware"
)

const defaultSearchLimit = 10

// searchHandler serves the autocomplete endpoints used by pickers.
type searchHandler struct {
	supplierService portssvc.SupplierSvcFacade
	productService  portssvc.ProductSvcFacade
	methodService   portssvc.PaymentMethodSvcFacade
}

// registerSearchRoutes registers the autocomplete routes.
func registerSearchRoutes(
	rg *gin.RouterGroup,
	supplierService portssvc.SupplierSvcFacade,
	productService portssvc.ProductSvcFacade,
	methodService portssvc.PaymentMethodSvcFacade,
) {
	h := &searchHandler{
		supplierService: supplierService,
		productService:  productService,
		methodService:   methodService,
	}

	search := rg.Group("/search")
	{
		search.GET("/suppliers", h.searchSuppliers)
		search.GET("/products", h.searchProducts)
		search.GET("/payment-methods", h.searchPaymentMethods)
	}
}

func searchParams(c *gin.Context) (query string, limit int) {
	query = strings.TrimSpace(c.Query("q"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if limit <= 0 || limit > 100 {
		limit = defaultSearchLimit
	}
	return query, limit
}

// searchSuppliers godoc
// @Summary Supplier autocomplete
// @Description Suggests suppliers whose name contains the query; labels include the locality when known
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max suggestions (default 10)"
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} map[string]string "Search failed"
// @Security BearerAuth
// @Router /search/suppliers [get]
func (h *searchHandler) searchSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query, limit := searchParams(c)
	if query == "" {
		c.JSON(http.StatusOK, dto.SearchResponse{Results: []dto.SearchResult{}})
		return
	}

	suppliers, err := h.supplierService.SearchSuppliers(c.Request.Context(), query, limit)
	if err != nil {
		logger.Error("Supplier search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	results := make([]dto.SearchResult, 0, len(suppliers))
	for _, s := range suppliers {
		results = append(results, dto.SearchResult{Value: s.SupplierID, Label: s.DisplayName()})
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Results: results})
}

// searchProducts godoc
// @Summary Product autocomplete
// @Description Suggests products whose name contains the query
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max suggestions (default 10)"
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} map[string]string "Search failed"
// @Security BearerAuth
// @Router /search/products [get]
func (h *searchHandler) searchProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query, limit := searchParams(c)
	if query == "" {
		c.JSON(http.StatusOK, dto.SearchResponse{Results: []dto.SearchResult{}})
		return
	}

	products, err := h.productService.SearchProducts(c.Request.Context(), query, limit)
	if err != nil {
		logger.Error("Product search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	results := make([]dto.SearchResult, 0, len(products))
	for _, p := range products {
		results = append(results, dto.SearchResult{Value: p.ProductID, Label: p.Name})
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Results: results})
}

// searchPaymentMethods godoc
// @Summary Payment method autocomplete
// @Description Suggests payment methods; labels render as bank, digits and type
// @Tags search
// @Produce json
// @Param q query string false "Search query (matched against the label)"
// @Param limit query int false "Max suggestions (default 10)"
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} map[string]string "Search failed"
// @Security BearerAuth
// @Router /search/payment-methods [get]
func (h *searchHandler) searchPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query, limit := searchParams(c)

	methods, err := h.methodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		logger.Error("Payment method search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	// The payment method list is small; filter on the rendered label.
	results := make([]dto.SearchResult, 0, limit)
	for _, m := range methods {
		label := m.Label()
		if query != "" && !strings.Contains(strings.ToLower(label), strings.ToLower(query)) {
			continue
		}
		results = append(results, dto.SearchResult{Value: m.PaymentMethodID, Label: label})
		if len(results) == limit {
			break
		}
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Results: results})
}

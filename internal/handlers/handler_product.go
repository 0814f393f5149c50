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

// productTypeHandler handles HTTP requests related to product types.
type productTypeHandler struct {
	productTypeService portssvc.ProductTypeSvcFacade
}

func newProductTypeHandler(pts portssvc.ProductTypeSvcFacade) *productTypeHandler {
	return &productTypeHandler{productTypeService: pts}
}

// registerProductTypeRoutes registers routes related to product types.
func registerProductTypeRoutes(rg *gin.RouterGroup, productTypeService portssvc.ProductTypeSvcFacade) {
	h := newProductTypeHandler(productTypeService)

	types := rg.Group("/product-types")
	{
		types.POST("", h.createProductType)
		types.GET("", h.listProductTypes)
		types.GET("/:id", h.getProductTypeByID)
		types.PUT("/:id", h.updateProductType)
		types.DELETE("/:id", h.deleteProductType)
	}
}

// createProductType godoc
// @Summary Create a new product type
// @Tags product-types
// @Accept json
// @Produce json
// @Param productType body dto.CreateProductTypeRequest true "Product type details"
// @Success 201 {object} dto.ProductTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create product type"
// @Security BearerAuth
// @Router /product-types [post]
func (h *productTypeHandler) createProductType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	productType, err := h.productTypeService.CreateProductType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create product type in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product type"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductTypeResponse(*productType))
}

// getProductTypeByID godoc
// @Summary Get a product type by ID
// @Tags product-types
// @Produce json
// @Param id path string true "Product type ID (UUID)"
// @Success 200 {object} dto.ProductTypeResponse
// @Failure 404 {object} map[string]string "Product type not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product type"
// @Security BearerAuth
// @Router /product-types/{id} [get]
func (h *productTypeHandler) getProductTypeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productTypeID := c.Param("id")

	productType, err := h.productTypeService.GetProductTypeByID(c.Request.Context(), productTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product type not found"})
		} else {
			logger.Error("Failed to get product type from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product type"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductTypeResponse(*productType))
}

// listProductTypes godoc
// @Summary List all product types
// @Tags product-types
// @Produce json
// @Success 200 {array} dto.ProductTypeResponse
// @Failure 500 {object} map[string]string "Failed to list product types"
// @Security BearerAuth
// @Router /product-types [get]
func (h *productTypeHandler) listProductTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.productTypeService.ListProductTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list product types from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list product types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductTypeResponses(types))
}

// updateProductType godoc
// @Summary Update a product type
// @Tags product-types
// @Accept json
// @Produce json
// @Param id path string true "Product type ID (UUID)"
// @Param productType body dto.UpdateProductTypeRequest true "Fields to update"
// @Success 200 {object} dto.ProductTypeResponse
// @Failure 404 {object} map[string]string "Product type not found"
// @Failure 500 {object} map[string]string "Failed to update product type"
// @Security BearerAuth
// @Router /product-types/{id} [put]
func (h *productTypeHandler) updateProductType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productTypeID := c.Param("id")

	var req dto.UpdateProductTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	productType, err := h.productTypeService.UpdateProductType(c.Request.Context(), productTypeID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product type not found"})
		} else {
			logger.Error("Failed to update product type in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product type"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductTypeResponse(*productType))
}

// deleteProductType godoc
// @Summary Delete a product type
// @Tags product-types
// @Produce json
// @Param id path string true "Product type ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Product type not found"
// @Failure 500 {object} map[string]string "Failed to delete product type"
// @Security BearerAuth
// @Router /product-types/{id} [delete]
func (h *productTypeHandler) deleteProductType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productTypeID := c.Param("id")

	if err := h.productTypeService.DeleteProductType(c.Request.Context(), productTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product type not found"})
		} else {
			logger.Error("Failed to delete product type in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product type"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// productHandler handles HTTP requests related to products.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProductByID)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a new product
// @Description Adds a product that receipts can reference as a line item
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// getProductByID godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProductByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to get product from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param limit query int false "Max results (default 50)"
// @Param offset query int false "Results to skip"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} map[string]string "Failed to list products"
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parseListParams(c)

	products, err := h.productService.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list products from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// updateProduct godoc
// @Summary Update a product
// @Description Updates product fields; a typeIds value replaces the full set of type associations
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to update product"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to delete product"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to delete product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

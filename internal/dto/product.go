package dto

import "github.com/gridlined/Itemizer/internal/core/domain"

// CreateProductTypeRequest is the payload for creating a product type.
type CreateProductTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateProductTypeRequest is the payload for updating a product type.
type UpdateProductTypeRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// ProductTypeResponse is the API representation of a product type.
type ProductTypeResponse struct {
	ProductTypeID string `json:"productTypeId"`
	Name          string `json:"name"`
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Code        string   `json:"code" binding:"max=100"`
	TypeIDs     []string `json:"typeIds" binding:"omitempty,dive,uuid"`
	// ImageFilename is the original name of an uploaded product image; the
	// stored path is derived from it.
	ImageFilename *string `json:"imageFilename" binding:"omitempty,max=255"`
}

// UpdateProductRequest is the payload for updating a product. A non-nil
// TypeIDs replaces the full set of type associations.
type UpdateProductRequest struct {
	Name        *string   `json:"name" binding:"omitempty,max=200"`
	Description *string   `json:"description"`
	Code        *string   `json:"code" binding:"omitempty,max=100"`
	TypeIDs     *[]string `json:"typeIds" binding:"omitempty,dive,uuid"`
	// ImageFilename re-derives the stored image path when provided.
	ImageFilename *string `json:"imageFilename" binding:"omitempty,max=255"`
}

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ProductID   string                `json:"productId"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Code        string                `json:"code,omitempty"`
	ImagePath   string                `json:"imagePath,omitempty"`
	Types       []ProductTypeResponse `json:"types"`
}

// ToProductTypeResponse maps a domain product type to its API representation.
func ToProductTypeResponse(pt domain.ProductType) ProductTypeResponse {
	return ProductTypeResponse{ProductTypeID: pt.ProductTypeID, Name: pt.Name}
}

// ToProductTypeResponses maps a slice of domain product types.
func ToProductTypeResponses(types []domain.ProductType) []ProductTypeResponse {
	out := make([]ProductTypeResponse, 0, len(types))
	for _, pt := range types {
		out = append(out, ToProductTypeResponse(pt))
	}
	return out
}

// ToProductResponse maps a domain product to its API representation.
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Code:        p.Code,
		ImagePath:   p.ImagePath,
		Types:       ToProductTypeResponses(p.Types),
	}
}

// ToProductResponses maps a slice of domain products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

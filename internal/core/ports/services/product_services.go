package services

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/dto"
)

// ProductTypeSvcFacade defines the service operations for product types.
type ProductTypeSvcFacade interface {
	CreateProductType(ctx context.Context, req dto.CreateProductTypeRequest, creatorUserID string) (*domain.ProductType, error)
	GetProductTypeByID(ctx context.Context, productTypeID string) (*domain.ProductType, error)
	ListProductTypes(ctx context.Context) ([]domain.ProductType, error)
	UpdateProductType(ctx context.Context, productTypeID string, req dto.UpdateProductTypeRequest, updaterUserID string) (*domain.ProductType, error)
	DeleteProductType(ctx context.Context, productTypeID string) error
}

// ProductSvcFacade defines the service operations for products.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	// SearchProducts backs the product autocomplete endpoint.
	SearchProducts(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

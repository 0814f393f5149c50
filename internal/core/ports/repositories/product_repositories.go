package repositories

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
)

// ProductTypeReader defines read operations for product type data.
type ProductTypeReader interface {
	FindProductTypeByID(ctx context.Context, productTypeID string) (*domain.ProductType, error)
	ListProductTypes(ctx context.Context) ([]domain.ProductType, error)
}

// ProductTypeWriter defines write operations for product type data.
type ProductTypeWriter interface {
	SaveProductType(ctx context.Context, productType domain.ProductType) error
	UpdateProductType(ctx context.Context, productType domain.ProductType) error
	DeleteProductType(ctx context.Context, productTypeID string) error
}

// ProductTypeRepositoryFacade combines all product-type repository interfaces.
type ProductTypeRepositoryFacade interface {
	ProductTypeReader
	ProductTypeWriter
}

// ProductReader defines read operations for product data.
type ProductReader interface {
	// FindProductByID retrieves a product with its type associations.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products ordered by name.
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)

	// SearchProductsByName retrieves products whose name contains the query,
	// case-insensitively, for autocomplete.
	SearchProductsByName(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data.
type ProductWriter interface {
	// SaveProduct persists a new product along with its type associations.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates a product and replaces its type associations.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product and its type associations.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

package repositories

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
)

// SupplierReader defines read operations for supplier data.
type SupplierReader interface {
	// FindSupplierByID retrieves a specific supplier by its ID.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves suppliers ordered by name, state, city.
	ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error)

	// SearchSuppliersByName retrieves suppliers whose name contains the query,
	// case-insensitively, for autocomplete.
	SearchSuppliersByName(ctx context.Context, query string, limit int) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data.
type SupplierWriter interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier updates an existing supplier.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error

	// DeleteSupplier removes a supplier.
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}

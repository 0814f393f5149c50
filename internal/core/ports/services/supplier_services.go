package services

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/dto"
)

// SupplierSvcFacade defines the service operations for suppliers.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterUserID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error

	// SearchSuppliers backs the supplier autocomplete endpoint.
	SearchSuppliers(ctx context.Context, query string, limit int) ([]domain.Supplier, error)
}

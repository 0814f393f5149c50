package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/gridlined/Itemizer/internal/core/domain"
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/dto"
)

// supplierService implements the SupplierSvcFacade interface
type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		Website:    req.Website,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to create supplier", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier by ID", slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterUserID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier for update", slog.String("supplier_id", supplierID))
		}
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Street != nil {
		supplier.Street = *req.Street
	}
	if req.City != nil {
		supplier.City = *req.City
	}
	if req.State != nil {
		supplier.State = *req.State
	}
	if req.PostalCode != nil {
		supplier.PostalCode = *req.PostalCode
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Website != nil {
		supplier.Website = *req.Website
	}
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = updaterUserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier updated", slog.String("supplier_id", supplierID))
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		}
		return err
	}
	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}

func (s *supplierService) SearchSuppliers(ctx context.Context, query string, limit int) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.SearchSuppliersByName(ctx, query, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to search suppliers", slog.String("query", query))
		return nil, fmt.Errorf("failed to search suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

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

// taxService implements the TaxSvcFacade interface
type taxService struct {
	BaseService
	taxRepo portsrepo.TaxRepositoryFacade
}

// NewTaxService creates a new tax service
func NewTaxService(taxRepo portsrepo.TaxRepositoryFacade) portssvc.TaxSvcFacade {
	return &taxService{taxRepo: taxRepo}
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

func (s *taxService) CreateTax(ctx context.Context, req dto.CreateTaxRequest, creatorUserID string) (*domain.Tax, error) {
	now := time.Now()
	tax := domain.Tax{
		TaxID: uuid.NewString(),
		Name:  req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taxRepo.SaveTax(ctx, tax); err != nil {
		s.LogError(ctx, err, "Failed to create tax", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create tax: %w", err)
	}

	s.LogInfo(ctx, "Tax created", slog.String("tax_id", tax.TaxID))
	return &tax, nil
}

func (s *taxService) GetTaxByID(ctx context.Context, taxID string) (*domain.Tax, error) {
	tax, err := s.taxRepo.FindTaxByID(ctx, taxID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tax by ID", slog.String("tax_id", taxID))
		}
		return nil, err
	}
	return tax, nil
}

func (s *taxService) ListTaxes(ctx context.Context) ([]domain.Tax, error) {
	taxes, err := s.taxRepo.ListTaxes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list taxes")
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	if taxes == nil {
		return []domain.Tax{}, nil
	}
	return taxes, nil
}

func (s *taxService) UpdateTax(ctx context.Context, taxID string, req dto.UpdateTaxRequest, updaterUserID string) (*domain.Tax, error) {
	tax, err := s.taxRepo.FindTaxByID(ctx, taxID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tax for update", slog.String("tax_id", taxID))
		}
		return nil, err
	}

	if req.Name != nil {
		tax.Name = *req.Name
	}
	tax.LastUpdatedAt = time.Now()
	tax.LastUpdatedBy = updaterUserID

	if err := s.taxRepo.UpdateTax(ctx, *tax); err != nil {
		s.LogError(ctx, err, "Failed to update tax", slog.String("tax_id", taxID))
		return nil, fmt.Errorf("failed to update tax: %w", err)
	}

	s.LogInfo(ctx, "Tax updated", slog.String("tax_id", taxID))
	return tax, nil
}

func (s *taxService) DeleteTax(ctx context.Context, taxID string) error {
	if err := s.taxRepo.DeleteTax(ctx, taxID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete tax", slog.String("tax_id", taxID))
		}
		return err
	}
	s.LogInfo(ctx, "Tax deleted", slog.String("tax_id", taxID))
	return nil
}

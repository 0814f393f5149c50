package services

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/dto"
)

// TaxSvcFacade defines the service operations for taxes.
type TaxSvcFacade interface {
	CreateTax(ctx context.Context, req dto.CreateTaxRequest, creatorUserID string) (*domain.Tax, error)
	GetTaxByID(ctx context.Context, taxID string) (*domain.Tax, error)
	ListTaxes(ctx context.Context) ([]domain.Tax, error)
	UpdateTax(ctx context.Context, taxID string, req dto.UpdateTaxRequest, updaterUserID string) (*domain.Tax, error)
	DeleteTax(ctx context.Context, taxID string) error
}

package repositories

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
)

// TaxReader defines read operations for tax data.
type TaxReader interface {
	FindTaxByID(ctx context.Context, taxID string) (*domain.Tax, error)
	ListTaxes(ctx context.Context) ([]domain.Tax, error)
}

// TaxWriter defines write operations for tax data.
type TaxWriter interface {
	SaveTax(ctx context.Context, tax domain.Tax) error
	UpdateTax(ctx context.Context, tax domain.Tax) error
	DeleteTax(ctx context.Context, taxID string) error
}

// TaxRepositoryFacade combines all tax-related repository interfaces.
type TaxRepositoryFacade interface {
	TaxReader
	TaxWriter
}

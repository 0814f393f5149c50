package services

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
)

// ReportingService generates the yearly spending reports.
type ReportingService interface {
	// YearSummary folds every receipt dated within the given calendar year into
	// the six running totals. Any per-receipt failure aborts the whole report.
	YearSummary(ctx context.Context, year int) (*domain.YearSummary, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gridlined/Itemizer/internal/core/domain"
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	receiptRepo portsrepo.ReceiptReader

	// now is swappable so tests can pin the current year for title selection.
	now func() time.Time
}

// NewReportingService creates a new reporting service
func NewReportingService(receiptRepo portsrepo.ReceiptReader) portssvc.ReportingService {
	return &reportingService{receiptRepo: receiptRepo, now: time.Now}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// yearTitle names the report: the current year is in progress, past and
// future years are closed.
func yearTitle(year, currentYear int) string {
	if year == currentYear {
		return fmt.Sprintf("%d Year-to-Date Summary", year)
	}
	return fmt.Sprintf("%d Year in Review", year)
}

func (s *reportingService) YearSummary(ctx context.Context, year int) (*domain.YearSummary, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	receipts, err := s.receiptRepo.FindReceiptsByDateRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load receipts for year summary", slog.Int("year", year))
		return nil, fmt.Errorf("failed to load receipts for %d: %w", year, err)
	}

	summary := domain.YearSummary{
		Year:  year,
		Title: yearTitle(year, s.now().Year()),
	}
	for _, receipt := range receipts {
		summary.Accumulate(receipt)
	}

	s.LogDebug(ctx, "Year summary computed",
		slog.Int("year", year),
		slog.Int("receipt_count", len(receipts)))
	return &summary, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gridlined/Itemizer/internal/core/domain"
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
)

// --- Mock ReceiptReader ---
type mockReceiptReader struct {
	mock.Mock
}

func (m *mockReceiptReader) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *mockReceiptReader) ListReceipts(ctx context.Context, filter portsrepo.ListReceiptsFilter) ([]domain.Receipt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *mockReceiptReader) FindReceiptsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Receipt, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func newTestReportingService(repo portsrepo.ReceiptReader, now time.Time) *reportingService {
	return &reportingService{
		receiptRepo: repo,
		now:         func() time.Time { return now },
	}
}

func TestYearTitle(t *testing.T) {
	assert.Equal(t, "2024 Year-to-Date Summary", yearTitle(2024, 2024))
	assert.Equal(t, "2023 Year in Review", yearTitle(2023, 2024))
	assert.Equal(t, "2025 Year in Review", yearTitle(2025, 2024))
}

func TestYearSummary_SumsComponents(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReceiptReader)

	receipts := []domain.Receipt{
		{
			Items:      []domain.Item{{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("3.87")}},
			Fees:       []domain.Fee{{Quantity: 1, Amount: decimal.RequireFromString("0.50")}},
			TaxCharges: []domain.TaxCharge{{Amount: decimal.RequireFromString("0.70")}},
		},
		{
			Items:      []domain.Item{{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("10.00")}},
			Discounts:  []domain.Discount{{Amount: decimal.RequireFromString("1.25")}},
			Gratuities: []domain.Gratuity{{Amount: decimal.RequireFromString("2.00")}},
		},
	}

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	repo.On("FindReceiptsByDateRange", ctx, from, to).Return(receipts, nil).Once()

	svc := newTestReportingService(repo, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))

	summary, err := svc.YearSummary(ctx, 2024)

	assert.NoError(t, err)
	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, "2024 Year-to-Date Summary", summary.Title)
	assert.True(t, decimal.RequireFromString("17.74").Equal(summary.Purchases), "purchases: %s", summary.Purchases)
	assert.True(t, decimal.RequireFromString("0.50").Equal(summary.Fees))
	assert.True(t, decimal.RequireFromString("1.25").Equal(summary.Discounts))
	assert.True(t, decimal.RequireFromString("0.70").Equal(summary.Taxes))
	assert.True(t, decimal.RequireFromString("2.00").Equal(summary.Tips))

	// Final is the sum of per-receipt totals, which must reconcile with the
	// component totals: purchases + fees - discounts + taxes + tips.
	expectedFinal := summary.Purchases.
		Add(summary.Fees).
		Sub(summary.Discounts).
		Add(summary.Taxes).
		Add(summary.Tips)
	assert.True(t, expectedFinal.Equal(summary.Final), "final: %s", summary.Final)

	repo.AssertExpectations(t)
}

func TestYearSummary_EmptyYear(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReceiptReader)
	repo.On("FindReceiptsByDateRange", ctx, mock.Anything, mock.Anything).Return([]domain.Receipt{}, nil).Once()

	svc := newTestReportingService(repo, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

	summary, err := svc.YearSummary(ctx, 2023)

	assert.NoError(t, err)
	assert.Equal(t, "2023 Year in Review", summary.Title)
	assert.True(t, summary.Purchases.IsZero())
	assert.True(t, summary.Fees.IsZero())
	assert.True(t, summary.Discounts.IsZero())
	assert.True(t, summary.Taxes.IsZero())
	assert.True(t, summary.Tips.IsZero())
	assert.True(t, summary.Final.IsZero())

	repo.AssertExpectations(t)
}

func TestYearSummary_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReceiptReader)
	repo.On("FindReceiptsByDateRange", ctx, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	svc := newTestReportingService(repo, time.Now())

	summary, err := svc.YearSummary(ctx, 2024)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertExpectations(t)
}

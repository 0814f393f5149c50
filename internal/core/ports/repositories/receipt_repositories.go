package repositories

import (
	"context"
	"time"

	"github.com/gridlined/Itemizer/internal/core/domain"
)

// ListReceiptsFilter narrows a receipt listing. Zero values mean "no filter".
type ListReceiptsFilter struct {
	From       *time.Time // inclusive
	To         *time.Time // inclusive
	SupplierID string
	Limit      int
	Offset     int
}

// ReceiptReader defines read operations for receipt aggregates.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt with all of its child collections
	// (items, fees, discounts, tax charges, gratuities, payments) loaded.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves receipts matching the filter with children loaded,
	// ordered by date descending then time descending (natural display order).
	ListReceipts(ctx context.Context, filter ListReceiptsFilter) ([]domain.Receipt, error)

	// FindReceiptsByDateRange retrieves all receipts whose date falls within
	// [from, to] inclusive, with children loaded, ordered by date descending.
	FindReceiptsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipt aggregates. Child rows
// are written and removed together with the owning receipt.
type ReceiptWriter interface {
	// SaveReceipt persists a receipt and all of its children in one transaction.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error

	// UpdateReceipt updates the receipt row and replaces its children in one
	// transaction.
	UpdateReceipt(ctx context.Context, receipt domain.Receipt) error

	// DeleteReceipt removes a receipt; child rows cascade.
	DeleteReceipt(ctx context.Context, receiptID string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the database row for a receipt. Monetary aggregates are never
// stored; they are recomputed from the child rows on read.
type Receipt struct {
	ReceiptID  string     `db:"receipt_id"`
	SupplierID string     `db:"supplier_id"`
	Date       time.Time  `db:"receipt_date"`
	Time       *time.Time `db:"receipt_time"`
	ImagePath  *string    `db:"image_path"`
	AuditFields
}

// Item is the database row for a purchased line item.
type Item struct {
	ItemID    string          `db:"item_id"`
	ReceiptID string          `db:"receipt_id"`
	ProductID string          `db:"product_id"`
	Quantity  decimal.Decimal `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	AuditFields
}

// Fee is the database row for a receipt fee.
type Fee struct {
	FeeID     string          `db:"fee_id"`
	ReceiptID string          `db:"receipt_id"`
	Name      string          `db:"name"`
	Quantity  int64           `db:"quantity"`
	Amount    decimal.Decimal `db:"amount"`
	AuditFields
}

// Discount is the database row for a receipt discount.
type Discount struct {
	DiscountID string          `db:"discount_id"`
	ReceiptID  string          `db:"receipt_id"`
	Name       string          `db:"name"`
	Amount     decimal.Decimal `db:"amount"`
	AuditFields
}

// TaxCharge is the database row for a tax amount charged on a receipt.
type TaxCharge struct {
	TaxChargeID string          `db:"tax_charge_id"`
	ReceiptID   string          `db:"receipt_id"`
	TaxID       string          `db:"tax_id"`
	Amount      decimal.Decimal `db:"amount"`
	AuditFields
}

// Gratuity is the database row for a tip on a receipt.
type Gratuity struct {
	GratuityID string          `db:"gratuity_id"`
	ReceiptID  string          `db:"receipt_id"`
	To         *string         `db:"recipient"`
	Amount     decimal.Decimal `db:"amount"`
	AuditFields
}

// Payment is the database row for a payment against a receipt.
type Payment struct {
	PaymentID       string          `db:"payment_id"`
	ReceiptID       string          `db:"receipt_id"`
	PaymentMethodID string          `db:"payment_method_id"`
	Amount          decimal.Decimal `db:"amount"`
	AuditFields
}

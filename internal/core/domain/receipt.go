package domain

import (
	"time"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ReceiptStatus is the derived payment-reconciliation label for a receipt.
// It is never stored; Status recomputes it from current data on every call.
type ReceiptStatus string

const (
	StatusNone      ReceiptStatus = ""
	StatusUnderpaid ReceiptStatus = "Underpaid"
	StatusOverpaid  ReceiptStatus = "Overpaid"
	StatusRefunded  ReceiptStatus = "Refunded"
	StatusPaid      ReceiptStatus = "Paid"
)

// Item is one purchased product line on a receipt: quantity x unit price.
type Item struct {
	ItemID    string          `json:"itemID"` // Primary Key (UUID)
	ReceiptID string          `json:"receiptID"`
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`  // 3 decimal places (e.g. 1.5 lbs)
	UnitPrice decimal.Decimal `json:"unitPrice"` // 2 decimal places
	AuditFields
}

// Cost is the line cost, rounded half-up to cents.
func (i Item) Cost() decimal.Decimal {
	return i.UnitPrice.Mul(i.Quantity).Round(2)
}

// Fee is an additional charge on a receipt (bag fee, delivery fee, ...).
type Fee struct {
	FeeID     string          `json:"feeID"` // Primary Key (UUID)
	ReceiptID string          `json:"receiptID"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"` // Default 1
	Amount    decimal.Decimal `json:"amount"`   // 2 decimal places
	AuditFields
}

// Cost is amount x quantity.
func (f Fee) Cost() decimal.Decimal {
	return f.Amount.Mul(decimal.NewFromInt(f.Quantity))
}

// Discount is a deduction from a receipt's total (coupon, sale price adjustment).
type Discount struct {
	DiscountID string          `json:"discountID"` // Primary Key (UUID)
	ReceiptID  string          `json:"receiptID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"` // 2 decimal places, subtracted from total
	AuditFields
}

// TaxCharge is the amount charged on a receipt for one named tax.
type TaxCharge struct {
	TaxChargeID string          `json:"taxChargeID"` // Primary Key (UUID)
	ReceiptID   string          `json:"receiptID"`
	TaxID       string          `json:"taxID"`
	TaxName     string          `json:"taxName"`
	Amount      decimal.Decimal `json:"amount"` // 2 decimal places
	AuditFields
}

// Rate derives the effective tax rate against the owning receipt's total.
// A zero total makes the division undefined; that is surfaced as
// apperrors.ErrZeroTotal rather than silently defaulted.
func (t TaxCharge) Rate(receiptTotal decimal.Decimal) (decimal.Decimal, error) {
	if receiptTotal.IsZero() {
		return decimal.Zero, apperrors.ErrZeroTotal
	}
	return t.Amount.Div(receiptTotal), nil
}

// Percentage converts the tax rate into a percentage, e.g. 0.14 -> 14.
func (t TaxCharge) Percentage(receiptTotal decimal.Decimal) (decimal.Decimal, error) {
	rate, err := t.Rate(receiptTotal)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Mul(decimal.NewFromInt(100)), nil
}

// PercentageString renders the percentage with three fraction digits, e.g. "10.000%".
func (t TaxCharge) PercentageString(receiptTotal decimal.Decimal) (string, error) {
	pct, err := t.Percentage(receiptTotal)
	if err != nil {
		return "", err
	}
	return pct.StringFixed(3) + "%", nil
}

// Gratuity is a tip attached to a receipt, optionally naming the recipient.
type Gratuity struct {
	GratuityID string          `json:"gratuityID"` // Primary Key (UUID)
	ReceiptID  string          `json:"receiptID"`
	To         string          `json:"to"` // server, salesperson, etc; may be empty
	Amount     decimal.Decimal `json:"amount"`
	AuditFields
}

// Payment records money paid against a receipt with a given payment method.
type Payment struct {
	PaymentID       string          `json:"paymentID"` // Primary Key (UUID)
	ReceiptID       string          `json:"receiptID"`
	PaymentMethodID string          `json:"paymentMethodID"`
	Amount          decimal.Decimal `json:"amount"`
	AuditFields
}

// Receipt is one purchase transaction: the aggregate root owning its line
// items, fees, discounts, tax charges, gratuities and payments. All monetary
// aggregates are derived on read and never persisted.
type Receipt struct {
	ReceiptID  string     `json:"receiptID"` // Primary Key (UUID)
	SupplierID string     `json:"supplierID"`
	Supplier   *Supplier  `json:"supplier,omitempty"`
	Date       time.Time  `json:"date"`           // Required, date only
	Time       *time.Time `json:"time,omitempty"` // Nullable time of day
	ImagePath  string     `json:"imagePath"`

	Items      []Item      `json:"items"`
	Fees       []Fee       `json:"fees"`
	Discounts  []Discount  `json:"discounts"`
	TaxCharges []TaxCharge `json:"taxCharges"`
	Gratuities []Gratuity  `json:"gratuities"`
	Payments   []Payment   `json:"payments"`
	AuditFields
}

// Subtotal sums the cost of all purchased items.
func (r Receipt) Subtotal() decimal.Decimal {
	cost := decimal.Zero
	for _, item := range r.Items {
		cost = cost.Add(item.Cost())
	}
	return cost
}

// Tax sums the amounts of all tax charges.
func (r Receipt) Tax() decimal.Decimal {
	cost := decimal.Zero
	for _, charge := range r.TaxCharges {
		cost = cost.Add(charge.Amount)
	}
	return cost
}

// Discount sums the amounts of all discounts.
func (r Receipt) Discount() decimal.Decimal {
	amount := decimal.Zero
	for _, coupon := range r.Discounts {
		amount = amount.Add(coupon.Amount)
	}
	return amount
}

// Fee sums the cost of all fees.
func (r Receipt) Fee() decimal.Decimal {
	amount := decimal.Zero
	for _, fee := range r.Fees {
		amount = amount.Add(fee.Cost())
	}
	return amount
}

// Tip sums the amounts of all gratuities.
func (r Receipt) Tip() decimal.Decimal {
	amount := decimal.Zero
	for _, tip := range r.Gratuities {
		amount = amount.Add(tip.Amount)
	}
	return amount
}

// Total is subtotal + fee - discount + tax + tip, in that order, with no
// intermediate rounding beyond each component's own stored precision.
func (r Receipt) Total() decimal.Decimal {
	return r.Subtotal().
		Add(r.Fee()).
		Sub(r.Discount()).
		Add(r.Tax()).
		Add(r.Tip())
}

// PaymentsSum sums all recorded payments.
func (r Receipt) PaymentsSum() decimal.Decimal {
	paid := decimal.Zero
	for _, payment := range r.Payments {
		paid = paid.Add(payment.Amount)
	}
	return paid
}

// Status classifies the receipt against its recorded payments. No payments
// yields the empty status. The branch order (underpaid, overpaid, refunded,
// paid) is deliberate: the refunded branch can only be reached when a fully
// negative total equals a negative payment sum.
func (r Receipt) Status() ReceiptStatus {
	if len(r.Payments) == 0 {
		return StatusNone
	}
	paid := r.PaymentsSum()
	total := r.Total()
	switch {
	case paid.LessThan(total):
		return StatusUnderpaid
	case paid.GreaterThan(total):
		return StatusOverpaid
	case paid.IsNegative():
		return StatusRefunded
	default:
		return StatusPaid
	}
}

// When renders the receipt's date and, if present, its time of day on a
// 12-hour clock with no leading zero on the hour, e.g. "2024-05-03 4:32am".
func (r Receipt) When() string {
	when := r.Date.Format("2006-01-02")
	if r.Time != nil {
		when = when + " " + r.Time.Format("3:04pm")
	}
	return when
}

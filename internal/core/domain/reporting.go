package domain

import (
	"github.com/shopspring/decimal"
)

// YearSummary holds the six running totals for a reporting year, accumulated
// over every receipt dated within that year.
type YearSummary struct {
	Year      int             `json:"year"`
	Title     string          `json:"title"`
	Purchases decimal.Decimal `json:"purchases"` // Sum of receipt subtotals
	Fees      decimal.Decimal `json:"fees"`
	Discounts decimal.Decimal `json:"discounts"`
	Taxes     decimal.Decimal `json:"taxes"`
	Tips      decimal.Decimal `json:"tips"`
	Final     decimal.Decimal `json:"final"` // Sum of receipt totals
}

// Accumulate folds one receipt's derived scalars into the running totals.
func (s *YearSummary) Accumulate(r Receipt) {
	s.Purchases = s.Purchases.Add(r.Subtotal())
	s.Fees = s.Fees.Add(r.Fee())
	s.Discounts = s.Discounts.Add(r.Discount())
	s.Taxes = s.Taxes.Add(r.Tax())
	s.Tips = s.Tips.Add(r.Tip())
	s.Final = s.Final.Add(r.Total())
}

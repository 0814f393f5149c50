package utils

import "github.com/shopspring/decimal"

// ToUSD returns a fixed-point USD display string for the given amount:
// "$D.DD" for non-negative values, "-$D.DD" for negative values. The amount is
// rounded half-up to cents from its exact decimal representation; arbitrarily
// large integer parts render in full, never in scientific notation.
// Example: ToUSD(decimal.NewFromFloat(8.387)) returns "$8.39".
func ToUSD(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-$" + rounded.Neg().StringFixed(2)
	}
	return "$" + rounded.StringFixed(2)
}

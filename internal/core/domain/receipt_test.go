package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/gridlined/Itemizer/internal/core/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestItem_Cost(t *testing.T) {
	tests := []struct {
		name      string
		quantity  string
		unitPrice string
		want      string
	}{
		{name: "whole quantity", quantity: "2", unitPrice: "3.87", want: "7.74"},
		{name: "fractional quantity rounds to cents", quantity: "1.5", unitPrice: "3.33", want: "5.00"},
		{name: "rounds half up", quantity: "0.5", unitPrice: "0.05", want: "0.03"},
		{name: "zero quantity", quantity: "0", unitPrice: "9.99", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.Item{Quantity: d(tt.quantity), UnitPrice: d(tt.unitPrice)}
			assert.True(t, d(tt.want).Equal(item.Cost()), "got %s", item.Cost())
		})
	}
}

func TestFee_Cost(t *testing.T) {
	fee := domain.Fee{Quantity: 3, Amount: d("0.10")}
	assert.True(t, d("0.30").Equal(fee.Cost()))
}

func TestReceipt_EmptyAggregates(t *testing.T) {
	var r domain.Receipt

	assert.True(t, r.Subtotal().IsZero())
	assert.True(t, r.Fee().IsZero())
	assert.True(t, r.Discount().IsZero())
	assert.True(t, r.Tax().IsZero())
	assert.True(t, r.Tip().IsZero())
	assert.True(t, r.Total().IsZero())
	assert.True(t, r.PaymentsSum().IsZero())
	assert.Equal(t, domain.StatusNone, r.Status())
}

func TestReceipt_Total(t *testing.T) {
	r := domain.Receipt{
		Items: []domain.Item{
			{Quantity: d("2"), UnitPrice: d("3.87")},
			{Quantity: d("1"), UnitPrice: d("1.26")},
		},
		Fees:       []domain.Fee{{Quantity: 1, Amount: d("0.50")}},
		Discounts:  []domain.Discount{{Amount: d("1.00")}},
		TaxCharges: []domain.TaxCharge{{Amount: d("0.90")}},
		Gratuities: []domain.Gratuity{{Amount: d("2.00")}},
	}

	// 9.00 + 0.50 - 1.00 + 0.90 + 2.00
	assert.True(t, d("9.00").Equal(r.Subtotal()))
	assert.True(t, d("11.40").Equal(r.Total()), "got %s", r.Total())
}

func TestReceipt_Status(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		payments []string
		want     domain.ReceiptStatus
	}{
		{name: "no payments", total: "10", payments: nil, want: domain.StatusNone},
		{name: "paid exactly", total: "10", payments: []string{"10"}, want: domain.StatusPaid},
		{name: "paid across two payments", total: "10", payments: []string{"6", "4"}, want: domain.StatusPaid},
		{name: "underpaid", total: "10", payments: []string{"8"}, want: domain.StatusUnderpaid},
		{name: "overpaid", total: "10", payments: []string{"12"}, want: domain.StatusOverpaid},
		{name: "zero total with zero payment", total: "0", payments: []string{"0"}, want: domain.StatusPaid},
		{name: "refunded", total: "-10", payments: []string{"-10"}, want: domain.StatusRefunded},
		{name: "negative total underpaid further", total: "-10", payments: []string{"-12"}, want: domain.StatusUnderpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.Receipt{
				Items: []domain.Item{{Quantity: d("1"), UnitPrice: d(tt.total)}},
			}
			for _, p := range tt.payments {
				r.Payments = append(r.Payments, domain.Payment{Amount: d(p)})
			}
			assert.Equal(t, tt.want, r.Status())
		})
	}
}

func TestTaxCharge_Rate(t *testing.T) {
	charge := domain.TaxCharge{Amount: d("1.25")}

	rate, err := charge.Rate(d("12.50"))
	assert.NoError(t, err)
	assert.True(t, d("0.1").Equal(rate), "got %s", rate)

	pct, err := charge.Percentage(d("12.50"))
	assert.NoError(t, err)
	assert.True(t, d("10").Equal(pct))

	str, err := charge.PercentageString(d("12.50"))
	assert.NoError(t, err)
	assert.Equal(t, "10.000%", str)
}

func TestTaxCharge_Rate_ZeroTotal(t *testing.T) {
	charge := domain.TaxCharge{Amount: d("1.25")}

	_, err := charge.Rate(decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrZeroTotal)

	_, err = charge.Percentage(decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrZeroTotal)

	_, err = charge.PercentageString(decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrZeroTotal)
}

func TestReceipt_When(t *testing.T) {
	date := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)

	r := domain.Receipt{Date: date}
	assert.Equal(t, "2024-05-03", r.When())

	morning := time.Date(2024, time.May, 3, 4, 32, 0, 0, time.UTC)
	r.Time = &morning
	assert.Equal(t, "2024-05-03 4:32am", r.When())

	evening := time.Date(2024, time.May, 3, 16, 5, 0, 0, time.UTC)
	r.Time = &evening
	assert.Equal(t, "2024-05-03 4:05pm", r.When())
}

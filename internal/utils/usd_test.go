package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gridlined/Itemizer/internal/utils"
)

func TestToUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{
			name:   "zero",
			amount: decimal.Zero,
			want:   "$0.00",
		},
		{
			name:   "whole dollars",
			amount: decimal.NewFromInt(1),
			want:   "$1.00",
		},
		{
			name:   "exact cents",
			amount: decimal.NewFromFloat(5.2),
			want:   "$5.20",
		},
		{
			name:   "rounds half up",
			amount: decimal.NewFromFloat(8.385),
			want:   "$8.39",
		},
		{
			name:   "rounds down below half a cent",
			amount: decimal.NewFromFloat(4.9649),
			want:   "$4.96",
		},
		{
			name:   "negative amount keeps sign outside the dollar sign",
			amount: decimal.NewFromFloat(-987.65),
			want:   "-$987.65",
		},
		{
			name:   "negative rounding",
			amount: decimal.NewFromFloat(-0.005),
			want:   "-$0.01",
		},
		{
			name:   "large value never uses scientific notation",
			amount: decimal.RequireFromString("123456789012345.678"),
			want:   "$123456789012345.68",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToUSD(tt.amount))
		})
	}
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridlined/Itemizer/internal/core/domain"
)

func TestPaymentMethod_Label(t *testing.T) {
	last4 := "1234"
	empty := ""

	tests := []struct {
		name   string
		method domain.PaymentMethod
		want   string
	}{
		{
			name: "bank with digits and type",
			method: domain.PaymentMethod{
				Bank:  "Chase",
				Last4: &last4,
				Type:  domain.PaymentMethodType{Name: "Credit Card"},
			},
			want: "Chase x1234 (Credit Card)",
		},
		{
			name: "no digits",
			method: domain.PaymentMethod{
				Bank: "Chase",
				Type: domain.PaymentMethodType{Name: "Credit Card"},
			},
			want: "Chase (Credit Card)",
		},
		{
			name: "empty digits treated as absent",
			method: domain.PaymentMethod{
				Bank:  "Chase",
				Last4: &empty,
				Type:  domain.PaymentMethodType{Name: "Debit Card"},
			},
			want: "Chase (Debit Card)",
		},
		{
			name: "type matching bank is not repeated",
			method: domain.PaymentMethod{
				Bank: "Cash",
				Type: domain.PaymentMethodType{Name: "Cash"},
			},
			want: "Cash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.Label())
		})
	}
}

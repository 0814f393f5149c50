package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridlined/Itemizer/internal/core/domain"
)

func TestSupplier_Locality(t *testing.T) {
	s := domain.Supplier{City: "Portland", State: "OR"}
	assert.Equal(t, "Portland, OR", s.Locality())
}

func TestSupplier_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		supplier domain.Supplier
		want     string
	}{
		{
			name:     "with city",
			supplier: domain.Supplier{Name: "Trader Joes", City: "Portland", State: "OR"},
			want:     "Trader Joes (Portland, OR)",
		},
		{
			name:     "without city",
			supplier: domain.Supplier{Name: "Online Store"},
			want:     "Online Store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.supplier.DisplayName())
		})
	}
}

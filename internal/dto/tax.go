package dto

import "github.com/gridlined/Itemizer/internal/core/domain"

// CreateTaxRequest is the payload for creating a tax.
type CreateTaxRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateTaxRequest is the payload for updating a tax.
type UpdateTaxRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// TaxResponse is the API representation of a tax.
type TaxResponse struct {
	TaxID string `json:"taxId"`
	Name  string `json:"name"`
}

// ToTaxResponse maps a domain tax to its API representation.
func ToTaxResponse(t domain.Tax) TaxResponse {
	return TaxResponse{TaxID: t.TaxID, Name: t.Name}
}

// ToTaxResponses maps a slice of domain taxes.
func ToTaxResponses(taxes []domain.Tax) []TaxResponse {
	out := make([]TaxResponse, 0, len(taxes))
	for _, t := range taxes {
		out = append(out, ToTaxResponse(t))
	}
	return out
}

package dto

import "github.com/gridlined/Itemizer/internal/core/domain"

// CreateSupplierRequest is the payload for creating a supplier.
type CreateSupplierRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Street     string `json:"street" binding:"max=100"`
	City       string `json:"city" binding:"max=100"`
	State      string `json:"state" binding:"max=100"`
	PostalCode string `json:"postalCode" binding:"max=20"`
	Phone      string `json:"phone" binding:"max=20"`
	Website    string `json:"website" binding:"omitempty,url,max=200"`
}

// UpdateSupplierRequest is the payload for updating a supplier. Nil fields
// are left unchanged.
type UpdateSupplierRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Street     *string `json:"street" binding:"omitempty,max=100"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	State      *string `json:"state" binding:"omitempty,max=100"`
	PostalCode *string `json:"postalCode" binding:"omitempty,max=20"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	Website    *string `json:"website" binding:"omitempty,url,max=200"`
}

// SupplierResponse is the API representation of a supplier.
type SupplierResponse struct {
	SupplierID  string `json:"supplierId"`
	Name        string `json:"name"`
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	Locality    string `json:"locality,omitempty"`
	DisplayName string `json:"displayName"`
}

// ToSupplierResponse maps a domain supplier to its API representation.
func ToSupplierResponse(s domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:  s.SupplierID,
		Name:        s.Name,
		Street:      s.Street,
		City:        s.City,
		State:       s.State,
		PostalCode:  s.PostalCode,
		Phone:       s.Phone,
		Website:     s.Website,
		Locality:    s.Locality(),
		DisplayName: s.DisplayName(),
	}
}

// ToSupplierResponses maps a slice of domain suppliers.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, ToSupplierResponse(s))
	}
	return out
}

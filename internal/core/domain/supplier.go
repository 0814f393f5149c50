package domain

import "fmt"

// Supplier is the vendor a receipt originates from.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	Website    string `json:"website"`
	AuditFields
}

// Locality renders the supplier's "city, state" pair.
func (s Supplier) Locality() string {
	return fmt.Sprintf("%s, %s", s.City, s.State)
}

// DisplayName is the supplier name, with the locality appended when a city is set.
func (s Supplier) DisplayName() string {
	if s.City != "" {
		return fmt.Sprintf("%s (%s)", s.Name, s.Locality())
	}
	return s.Name
}

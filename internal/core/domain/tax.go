package domain

// Tax is a named tax (e.g. "GST", "City Sales Tax") referenced by receipt tax charges.
type Tax struct {
	TaxID string `json:"taxID"` // Primary Key (UUID)
	Name  string `json:"name"`  // Not Null
	AuditFields
}

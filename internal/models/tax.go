package models

// Tax is the database row for a named tax.
type Tax struct {
	TaxID string `db:"tax_id"`
	Name  string `db:"name"`
	AuditFields
}

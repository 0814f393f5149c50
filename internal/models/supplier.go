package models

// Supplier is the database row for a supplier.
type Supplier struct {
	SupplierID string  `db:"supplier_id"`
	Name       string  `db:"name"`
	Street     *string `db:"street"`
	City       *string `db:"city"`
	State      *string `db:"state"`
	PostalCode *string `db:"postal_code"`
	Phone      *string `db:"phone"`
	Website    *string `db:"website"`
	AuditFields
}

package models

// ProductType is the database row for a product category.
type ProductType struct {
	ProductTypeID string `db:"product_type_id"`
	Name          string `db:"name"`
	AuditFields
}

// Product is the database row for a product. Types live in the
// product_product_types join table.
type Product struct {
	ProductID   string  `db:"product_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Code        *string `db:"code"`
	ImagePath   *string `db:"image_path"`
	AuditFields
}

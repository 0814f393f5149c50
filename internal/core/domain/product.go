package domain

// ProductType is a category label attached to products (many-to-many).
type ProductType struct {
	ProductTypeID string `json:"productTypeID"` // Primary Key (UUID)
	Name          string `json:"name"`
	AuditFields
}

// Product is something that can appear as a purchased line item on a receipt.
type Product struct {
	ProductID   string        `json:"productID"` // Primary Key (UUID)
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Code        string        `json:"code"` // UPC / SKU / product code
	ImagePath   string        `json:"imagePath"`
	Types       []ProductType `json:"types"`
	AuditFields
}

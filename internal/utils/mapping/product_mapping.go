package mapping

import (
	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/models"
)

// ToModelProductType converts a domain ProductType to a model ProductType.
func ToModelProductType(d domain.ProductType) models.ProductType {
	return models.ProductType{
		ProductTypeID: d.ProductTypeID,
		Name:          d.Name,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProductType converts a model ProductType to a domain ProductType.
func ToDomainProductType(m models.ProductType) domain.ProductType {
	return domain.ProductType{
		ProductTypeID: m.ProductTypeID,
		Name:          m.Name,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductTypeSlice converts model ProductTypes to domain ProductTypes.
func ToDomainProductTypeSlice(ms []models.ProductType) []domain.ProductType {
	ds := make([]domain.ProductType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProductType(m)
	}
	return ds
}

// ToModelProduct converts a domain Product to a model Product. The type
// associations are persisted separately via the join table.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		Description: nullableString(d.Description),
		Code:        nullableString(d.Code),
		ImagePath:   nullableString(d.ImagePath),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product plus its types to a domain Product.
func ToDomainProduct(m models.Product, types []models.ProductType) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		Description: stringValue(m.Description),
		Code:        stringValue(m.Code),
		ImagePath:   stringValue(m.ImagePath),
		Types:       ToDomainProductTypeSlice(types),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

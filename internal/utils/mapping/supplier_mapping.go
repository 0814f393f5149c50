package mapping

import (
	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier.
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:  d.SupplierID,
		Name:        d.Name,
		Street:      nullableString(d.Street),
		City:        nullableString(d.City),
		State:       nullableString(d.State),
		PostalCode:  nullableString(d.PostalCode),
		Phone:       nullableString(d.Phone),
		Website:     nullableString(d.Website),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier.
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Name:        m.Name,
		Street:      stringValue(m.Street),
		City:        stringValue(m.City),
		State:       stringValue(m.State),
		PostalCode:  stringValue(m.PostalCode),
		Phone:       stringValue(m.Phone),
		Website:     stringValue(m.Website),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers to domain Suppliers.
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}

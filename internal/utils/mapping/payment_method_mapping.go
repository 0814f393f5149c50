package mapping

import (
	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/models"
)

// ToModelPaymentMethodType converts a domain PaymentMethodType to its model.
func ToModelPaymentMethodType(d domain.PaymentMethodType) models.PaymentMethodType {
	return models.PaymentMethodType{
		PaymentMethodTypeID: d.PaymentMethodTypeID,
		Name:                d.Name,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethodType converts a model PaymentMethodType to its domain type.
func ToDomainPaymentMethodType(m models.PaymentMethodType) domain.PaymentMethodType {
	return domain.PaymentMethodType{
		PaymentMethodTypeID: m.PaymentMethodTypeID,
		Name:                m.Name,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentMethodTypeSlice converts model PaymentMethodTypes to domain ones.
func ToDomainPaymentMethodTypeSlice(ms []models.PaymentMethodType) []domain.PaymentMethodType {
	ds := make([]domain.PaymentMethodType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentMethodType(m)
	}
	return ds
}

// ToModelPaymentMethod converts a domain PaymentMethod to its model.
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		PaymentMethodID:     d.PaymentMethodID,
		Bank:                d.Bank,
		Last4:               d.Last4,
		PaymentMethodTypeID: d.Type.PaymentMethodTypeID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod plus its resolved type
// to a domain PaymentMethod.
func ToDomainPaymentMethod(m models.PaymentMethod, methodType models.PaymentMethodType) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID: m.PaymentMethodID,
		Bank:            m.Bank,
		Last4:           m.Last4,
		Type:            ToDomainPaymentMethodType(methodType),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

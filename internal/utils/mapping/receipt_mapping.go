package mapping

import (
	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/models"
)

// ToModelReceipt converts a domain Receipt to its flat database row. Child
// collections are persisted separately.
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:   d.ReceiptID,
		SupplierID:  d.SupplierID,
		Date:        d.Date,
		Time:        d.Time,
		ImagePath:   nullableString(d.ImagePath),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model Receipt row to a domain Receipt with empty
// child collections; callers attach children after loading them.
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:   m.ReceiptID,
		SupplierID:  m.SupplierID,
		Date:        m.Date,
		Time:        m.Time,
		ImagePath:   stringValue(m.ImagePath),
		Items:       []domain.Item{},
		Fees:        []domain.Fee{},
		Discounts:   []domain.Discount{},
		TaxCharges:  []domain.TaxCharge{},
		Gratuities:  []domain.Gratuity{},
		Payments:    []domain.Payment{},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelItem converts a domain Item to its database row.
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:      d.ItemID,
		ReceiptID:   d.ReceiptID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item.
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:      m.ItemID,
		ReceiptID:   m.ReceiptID,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFee converts a domain Fee to its database row.
func ToModelFee(d domain.Fee) models.Fee {
	return models.Fee{
		FeeID:       d.FeeID,
		ReceiptID:   d.ReceiptID,
		Name:        d.Name,
		Quantity:    d.Quantity,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFee converts a model Fee to a domain Fee.
func ToDomainFee(m models.Fee) domain.Fee {
	return domain.Fee{
		FeeID:       m.FeeID,
		ReceiptID:   m.ReceiptID,
		Name:        m.Name,
		Quantity:    m.Quantity,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDiscount converts a domain Discount to its database row.
func ToModelDiscount(d domain.Discount) models.Discount {
	return models.Discount{
		DiscountID:  d.DiscountID,
		ReceiptID:   d.ReceiptID,
		Name:        d.Name,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDiscount converts a model Discount to a domain Discount.
func ToDomainDiscount(m models.Discount) domain.Discount {
	return domain.Discount{
		DiscountID:  m.DiscountID,
		ReceiptID:   m.ReceiptID,
		Name:        m.Name,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTaxCharge converts a domain TaxCharge to its database row.
func ToModelTaxCharge(d domain.TaxCharge) models.TaxCharge {
	return models.TaxCharge{
		TaxChargeID: d.TaxChargeID,
		ReceiptID:   d.ReceiptID,
		TaxID:       d.TaxID,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxCharge converts a model TaxCharge plus the resolved tax name to a
// domain TaxCharge.
func ToDomainTaxCharge(m models.TaxCharge, taxName string) domain.TaxCharge {
	return domain.TaxCharge{
		TaxChargeID: m.TaxChargeID,
		ReceiptID:   m.ReceiptID,
		TaxID:       m.TaxID,
		TaxName:     taxName,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelGratuity converts a domain Gratuity to its database row.
func ToModelGratuity(d domain.Gratuity) models.Gratuity {
	return models.Gratuity{
		GratuityID:  d.GratuityID,
		ReceiptID:   d.ReceiptID,
		To:          nullableString(d.To),
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGratuity converts a model Gratuity to a domain Gratuity.
func ToDomainGratuity(m models.Gratuity) domain.Gratuity {
	return domain.Gratuity{
		GratuityID:  m.GratuityID,
		ReceiptID:   m.ReceiptID,
		To:          stringValue(m.To),
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayment converts a domain Payment to its database row.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:       d.PaymentID,
		ReceiptID:       d.ReceiptID,
		PaymentMethodID: d.PaymentMethodID,
		Amount:          d.Amount,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:       m.PaymentID,
		ReceiptID:       m.ReceiptID,
		PaymentMethodID: m.PaymentMethodID,
		Amount:          m.Amount,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

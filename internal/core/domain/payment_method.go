package domain

import "fmt"

// PaymentMethodType classifies payment methods (e.g. "Credit Card", "Cash").
type PaymentMethodType struct {
	PaymentMethodTypeID string `json:"paymentMethodTypeID"` // Primary Key (UUID)
	Name                string `json:"name"`
	AuditFields
}

// PaymentMethod is a concrete instrument used to pay a receipt.
type PaymentMethod struct {
	PaymentMethodID string            `json:"paymentMethodID"` // Primary Key (UUID)
	Bank            string            `json:"bank"`
	Last4           *string           `json:"last4"` // Nullable, last 4 digits
	Type            PaymentMethodType `json:"type"`
	AuditFields
}

// Label renders the method for display: bank, card digits if known, and the
// type name when it differs from the bank name.
func (m PaymentMethod) Label() string {
	number := ""
	typeName := ""
	if m.Last4 != nil && *m.Last4 != "" {
		number = fmt.Sprintf(" x%s", *m.Last4)
	}
	if m.Bank != m.Type.Name {
		typeName = fmt.Sprintf(" (%s)", m.Type.Name)
	}
	return fmt.Sprintf("%s%s%s", m.Bank, number, typeName)
}

package models

// PaymentMethodType is the database row for a payment method type.
type PaymentMethodType struct {
	PaymentMethodTypeID string `db:"payment_method_type_id"`
	Name                string `db:"name"`
	AuditFields
}

// PaymentMethod is the database row for a payment method.
type PaymentMethod struct {
	PaymentMethodID     string  `db:"payment_method_id"`
	Bank                string  `db:"bank"`
	Last4               *string `db:"last4"`
	PaymentMethodTypeID string  `db:"payment_method_type_id"`
	AuditFields
}

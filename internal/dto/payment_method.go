package dto

import "github.com/gridlined/Itemizer/internal/core/domain"

// CreatePaymentMethodTypeRequest is the payload for creating a payment method type.
type CreatePaymentMethodTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdatePaymentMethodTypeRequest is the payload for updating a payment method type.
type UpdatePaymentMethodTypeRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// PaymentMethodTypeResponse is the API representation of a payment method type.
type PaymentMethodTypeResponse struct {
	PaymentMethodTypeID string `json:"paymentMethodTypeId"`
	Name                string `json:"name"`
}

// CreatePaymentMethodRequest is the payload for creating a payment method.
type CreatePaymentMethodRequest struct {
	Bank   string  `json:"bank" binding:"required,max=100"`
	Last4  *string `json:"last4" binding:"omitempty,len=4,numeric"`
	TypeID string  `json:"typeId" binding:"required,uuid"`
}

// UpdatePaymentMethodRequest is the payload for updating a payment method.
type UpdatePaymentMethodRequest struct {
	Bank   *string `json:"bank" binding:"omitempty,max=100"`
	Last4  *string `json:"last4" binding:"omitempty,len=4,numeric"`
	TypeID *string `json:"typeId" binding:"omitempty,uuid"`
}

// PaymentMethodResponse is the API representation of a payment method. Label
// is the human-readable rendering used by pickers and autocomplete.
type PaymentMethodResponse struct {
	PaymentMethodID string                    `json:"paymentMethodId"`
	Bank            string                    `json:"bank"`
	Last4           *string                   `json:"last4,omitempty"`
	Type            PaymentMethodTypeResponse `json:"type"`
	Label           string                    `json:"label"`
}

// ToPaymentMethodTypeResponse maps a domain payment method type.
func ToPaymentMethodTypeResponse(t domain.PaymentMethodType) PaymentMethodTypeResponse {
	return PaymentMethodTypeResponse{PaymentMethodTypeID: t.PaymentMethodTypeID, Name: t.Name}
}

// ToPaymentMethodTypeResponses maps a slice of domain payment method types.
func ToPaymentMethodTypeResponses(types []domain.PaymentMethodType) []PaymentMethodTypeResponse {
	out := make([]PaymentMethodTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, ToPaymentMethodTypeResponse(t))
	}
	return out
}

// ToPaymentMethodResponse maps a domain payment method.
func ToPaymentMethodResponse(m domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: m.PaymentMethodID,
		Bank:            m.Bank,
		Last4:           m.Last4,
		Type:            ToPaymentMethodTypeResponse(m.Type),
		Label:           m.Label(),
	}
}

// ToPaymentMethodResponses maps a slice of domain payment methods.
func ToPaymentMethodResponses(methods []domain.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, ToPaymentMethodResponse(m))
	}
	return out
}

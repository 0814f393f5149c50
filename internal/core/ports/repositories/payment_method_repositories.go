package repositories

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
)

// PaymentMethodTypeReader defines read operations for payment method types.
type PaymentMethodTypeReader interface {
	FindPaymentMethodTypeByID(ctx context.Context, typeID string) (*domain.PaymentMethodType, error)
	ListPaymentMethodTypes(ctx context.Context) ([]domain.PaymentMethodType, error)
}

// PaymentMethodTypeWriter defines write operations for payment method types.
type PaymentMethodTypeWriter interface {
	SavePaymentMethodType(ctx context.Context, methodType domain.PaymentMethodType) error
	UpdatePaymentMethodType(ctx context.Context, methodType domain.PaymentMethodType) error
	DeletePaymentMethodType(ctx context.Context, typeID string) error
}

// PaymentMethodTypeRepositoryFacade combines the payment-method-type interfaces.
type PaymentMethodTypeRepositoryFacade interface {
	PaymentMethodTypeReader
	PaymentMethodTypeWriter
}

// PaymentMethodReader defines read operations for payment methods.
type PaymentMethodReader interface {
	// FindPaymentMethodByID retrieves a payment method with its type resolved.
	FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves payment methods ordered by bank, type, last4.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for payment methods.
type PaymentMethodWriter interface {
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, methodID string) error
}

// PaymentMethodRepositoryFacade combines the payment-method interfaces.
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}

package services

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/dto"
)

// PaymentMethodTypeSvcFacade defines the service operations for payment method types.
type PaymentMethodTypeSvcFacade interface {
	CreatePaymentMethodType(ctx context.Context, req dto.CreatePaymentMethodTypeRequest, creatorUserID string) (*domain.PaymentMethodType, error)
	GetPaymentMethodTypeByID(ctx context.Context, typeID string) (*domain.PaymentMethodType, error)
	ListPaymentMethodTypes(ctx context.Context) ([]domain.PaymentMethodType, error)
	UpdatePaymentMethodType(ctx context.Context, typeID string, req dto.UpdatePaymentMethodTypeRequest, updaterUserID string) (*domain.PaymentMethodType, error)
	DeletePaymentMethodType(ctx context.Context, typeID string) error
}

// PaymentMethodSvcFacade defines the service operations for payment methods.
type PaymentMethodSvcFacade interface {
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error)
	GetPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, methodID string, req dto.UpdatePaymentMethodRequest, updaterUserID string) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, methodID string) error
}

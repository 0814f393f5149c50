package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/gridlined/Itemizer/internal/core/domain"
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/dto"
)

// paymentMethodTypeService implements the PaymentMethodTypeSvcFacade interface
type paymentMethodTypeService struct {
	BaseService
	typeRepo portsrepo.PaymentMethodTypeRepositoryFacade
}

// NewPaymentMethodTypeService creates a new payment method type service
func NewPaymentMethodTypeService(typeRepo portsrepo.PaymentMethodTypeRepositoryFacade) portssvc.PaymentMethodTypeSvcFacade {
	return &paymentMethodTypeService{typeRepo: typeRepo}
}

var _ portssvc.PaymentMethodTypeSvcFacade = (*paymentMethodTypeService)(nil)

func (s *paymentMethodTypeService) CreatePaymentMethodType(ctx context.Context, req dto.CreatePaymentMethodTypeRequest, creatorUserID string) (*domain.PaymentMethodType, error) {
	now := time.Now()
	methodType := domain.PaymentMethodType{
		PaymentMethodTypeID: uuid.NewString(),
		Name:                req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.typeRepo.SavePaymentMethodType(ctx, methodType); err != nil {
		s.LogError(ctx, err, "Failed to create payment method type", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create payment method type: %w", err)
	}

	s.LogInfo(ctx, "Payment method type created", slog.String("payment_method_type_id", methodType.PaymentMethodTypeID))
	return &methodType, nil
}

func (s *paymentMethodTypeService) GetPaymentMethodTypeByID(ctx context.Context, typeID string) (*domain.PaymentMethodType, error) {
	methodType, err := s.typeRepo.FindPaymentMethodTypeByID(ctx, typeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment method type by ID", slog.String("payment_method_type_id", typeID))
		}
		return nil, err
	}
	return methodType, nil
}

func (s *paymentMethodTypeService) ListPaymentMethodTypes(ctx context.Context) ([]domain.PaymentMethodType, error) {
	types, err := s.typeRepo.ListPaymentMethodTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment method types")
		return nil, fmt.Errorf("failed to list payment method types: %w", err)
	}
	if types == nil {
		return []domain.PaymentMethodType{}, nil
	}
	return types, nil
}

func (s *paymentMethodTypeService) UpdatePaymentMethodType(ctx context.Context, typeID string, req dto.UpdatePaymentMethodTypeRequest, updaterUserID string) (*domain.PaymentMethodType, error) {
	methodType, err := s.typeRepo.FindPaymentMethodTypeByID(ctx, typeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment method type for update", slog.String("payment_method_type_id", typeID))
		}
		return nil, err
	}

	if req.Name != nil {
		methodType.Name = *req.Name
	}
	methodType.LastUpdatedAt = time.Now()
	methodType.LastUpdatedBy = updaterUserID

	if err := s.typeRepo.UpdatePaymentMethodType(ctx, *methodType); err != nil {
		s.LogError(ctx, err, "Failed to update payment method type", slog.String("payment_method_type_id", typeID))
		return nil, fmt.Errorf("failed to update payment method type: %w", err)
	}

	s.LogInfo(ctx, "Payment method type updated", slog.String("payment_method_type_id", typeID))
	return methodType, nil
}

func (s *paymentMethodTypeService) DeletePaymentMethodType(ctx context.Context, typeID string) error {
	if err := s.typeRepo.DeletePaymentMethodType(ctx, typeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payment method type", slog.String("payment_method_type_id", typeID))
		}
		return err
	}
	s.LogInfo(ctx, "Payment method type deleted", slog.String("payment_method_type_id", typeID))
	return nil
}

// paymentMethodService implements the PaymentMethodSvcFacade interface
type paymentMethodService struct {
	BaseService
	methodRepo portsrepo.PaymentMethodRepositoryFacade
	typeRepo   portsrepo.PaymentMethodTypeReader
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodRepositoryFacade, typeRepo portsrepo.PaymentMethodTypeReader) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{methodRepo: methodRepo, typeRepo: typeRepo}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error) {
	methodType, err := s.typeRepo.FindPaymentMethodTypeByID(ctx, req.TypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown payment method type %s", apperrors.ErrValidation, req.TypeID)
		}
		s.LogError(ctx, err, "Failed to resolve payment method type", slog.String("payment_method_type_id", req.TypeID))
		return nil, fmt.Errorf("failed to resolve payment method type: %w", err)
	}

	now := time.Now()
	method := domain.PaymentMethod{
		PaymentMethodID: uuid.NewString(),
		Bank:            req.Bank,
		Last4:           req.Last4,
		Type:            *methodType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.methodRepo.SavePaymentMethod(ctx, method); err != nil {
		s.LogError(ctx, err, "Failed to create payment method", slog.String("bank", req.Bank))
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}

	s.LogInfo(ctx, "Payment method created", slog.String("payment_method_id", method.PaymentMethodID))
	return &method, nil
}

func (s *paymentMethodService) GetPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, methodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment method by ID", slog.String("payment_method_id", methodID))
		}
		return nil, err
	}
	return method, nil
}

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.ListPaymentMethods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods")
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	if methods == nil {
		return []domain.PaymentMethod{}, nil
	}
	return methods, nil
}

func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, methodID string, req dto.UpdatePaymentMethodRequest, updaterUserID string) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, methodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment method for update", slog.String("payment_method_id", methodID))
		}
		return nil, err
	}

	if req.Bank != nil {
		method.Bank = *req.Bank
	}
	if req.Last4 != nil {
		method.Last4 = req.Last4
	}
	if req.TypeID != nil {
		methodType, err := s.typeRepo.FindPaymentMethodTypeByID(ctx, *req.TypeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown payment method type %s", apperrors.ErrValidation, *req.TypeID)
			}
			s.LogError(ctx, err, "Failed to resolve payment method type", slog.String("payment_method_type_id", *req.TypeID))
			return nil, fmt.Errorf("failed to resolve payment method type: %w", err)
		}
		method.Type = *methodType
	}
	method.LastUpdatedAt = time.Now()
	method.LastUpdatedBy = updaterUserID

	if err := s.methodRepo.UpdatePaymentMethod(ctx, *method); err != nil {
		s.LogError(ctx, err, "Failed to update payment method", slog.String("payment_method_id", methodID))
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}

	s.LogInfo(ctx, "Payment method updated", slog.String("payment_method_id", methodID))
	return method, nil
}

func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, methodID string) error {
	if err := s.methodRepo.DeletePaymentMethod(ctx, methodID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payment method", slog.String("payment_method_id", methodID))
		}
		return err
	}
	s.LogInfo(ctx, "Payment method deleted", slog.String("payment_method_id", methodID))
	return nil
}

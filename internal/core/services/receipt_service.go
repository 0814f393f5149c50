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
	"github.com/gridlined/Itemizer/internal/utils"
)

// receiptService implements the ReceiptSvcFacade interface. Creating or
// updating a receipt validates every cross-entity reference before handing
// the aggregate to the repository for a single-transaction write.
type receiptService struct {
	BaseService
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	supplierRepo portsrepo.SupplierReader
	productRepo  portsrepo.ProductReader
	taxRepo      portsrepo.TaxReader
	methodRepo   portsrepo.PaymentMethodReader
}

// NewReceiptService creates a new receipt service with the provided dependencies
func NewReceiptService(
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	supplierRepo portsrepo.SupplierReader,
	productRepo portsrepo.ProductReader,
	taxRepo portsrepo.TaxReader,
	methodRepo portsrepo.PaymentMethodReader,
) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo:  receiptRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		taxRepo:      taxRepo,
		methodRepo:   methodRepo,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func parseReceiptDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
	}
	return date, nil
}

func parseReceiptTime(value string) (time.Time, error) {
	clock, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid time %q", apperrors.ErrValidation, value)
	}
	return clock, nil
}

func (s *receiptService) checkSupplier(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown supplier %s", apperrors.ErrValidation, supplierID)
		}
		return nil, fmt.Errorf("failed to resolve supplier: %w", err)
	}
	return supplier, nil
}

func (s *receiptService) buildItems(ctx context.Context, receiptID string, reqs []dto.CreateReceiptItemRequest, audit domain.AuditFields) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(reqs))
	for _, req := range reqs {
		if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown product %s", apperrors.ErrValidation, req.ProductID)
			}
			return nil, fmt.Errorf("failed to resolve product %s: %w", req.ProductID, err)
		}
		items = append(items, domain.Item{
			ItemID:      uuid.NewString(),
			ReceiptID:   receiptID,
			ProductID:   req.ProductID,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			AuditFields: audit,
		})
	}
	return items, nil
}

func (s *receiptService) buildFees(receiptID string, reqs []dto.CreateReceiptFeeRequest, audit domain.AuditFields) []domain.Fee {
	fees := make([]domain.Fee, 0, len(reqs))
	for _, req := range reqs {
		fees = append(fees, domain.Fee{
			FeeID:       uuid.NewString(),
			ReceiptID:   receiptID,
			Name:        req.Name,
			Quantity:    req.Quantity,
			Amount:      req.Amount,
			AuditFields: audit,
		})
	}
	return fees
}

func (s *receiptService) buildDiscounts(receiptID string, reqs []dto.CreateReceiptDiscountRequest, audit domain.AuditFields) []domain.Discount {
	discounts := make([]domain.Discount, 0, len(reqs))
	for _, req := range reqs {
		discounts = append(discounts, domain.Discount{
			DiscountID:  uuid.NewString(),
			ReceiptID:   receiptID,
			Name:        req.Name,
			Amount:      req.Amount,
			AuditFields: audit,
		})
	}
	return discounts
}

func (s *receiptService) buildTaxCharges(ctx context.Context, receiptID string, reqs []dto.CreateReceiptTaxChargeRequest, audit domain.AuditFields) ([]domain.TaxCharge, error) {
	charges := make([]domain.TaxCharge, 0, len(reqs))
	for _, req := range reqs {
		tax, err := s.taxRepo.FindTaxByID(ctx, req.TaxID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown tax %s", apperrors.ErrValidation, req.TaxID)
			}
			return nil, fmt.Errorf("failed to resolve tax %s: %w", req.TaxID, err)
		}
		charges = append(charges, domain.TaxCharge{
			TaxChargeID: uuid.NewString(),
			ReceiptID:   receiptID,
			TaxID:       tax.TaxID,
			TaxName:     tax.Name,
			Amount:      req.Amount,
			AuditFields: audit,
		})
	}
	return charges, nil
}

func (s *receiptService) buildGratuities(receiptID string, reqs []dto.CreateReceiptGratuityRequest, audit domain.AuditFields) []domain.Gratuity {
	gratuities := make([]domain.Gratuity, 0, len(reqs))
	for _, req := range reqs {
		gratuities = append(gratuities, domain.Gratuity{
			GratuityID:  uuid.NewString(),
			ReceiptID:   receiptID,
			To:          req.To,
			Amount:      req.Amount,
			AuditFields: audit,
		})
	}
	return gratuities
}

func (s *receiptService) buildPayments(ctx context.Context, receiptID string, reqs []dto.CreateReceiptPaymentRequest, audit domain.AuditFields) ([]domain.Payment, error) {
	payments := make([]domain.Payment, 0, len(reqs))
	for _, req := range reqs {
		if _, err := s.methodRepo.FindPaymentMethodByID(ctx, req.PaymentMethodID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown payment method %s", apperrors.ErrValidation, req.PaymentMethodID)
			}
			return nil, fmt.Errorf("failed to resolve payment method %s: %w", req.PaymentMethodID, err)
		}
		payments = append(payments, domain.Payment{
			PaymentID:       uuid.NewString(),
			ReceiptID:       receiptID,
			PaymentMethodID: req.PaymentMethodID,
			Amount:          req.Amount,
			AuditFields:     audit,
		})
	}
	return payments, nil
}

func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, creatorUserID string) (*domain.Receipt, error) {
	supplier, err := s.checkSupplier(ctx, req.SupplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to validate receipt supplier", slog.String("supplier_id", req.SupplierID))
		return nil, err
	}

	date, err := parseReceiptDate(req.Date)
	if err != nil {
		return nil, err
	}
	var timeOfDay *time.Time
	if req.Time != nil {
		clock, err := parseReceiptTime(*req.Time)
		if err != nil {
			return nil, err
		}
		timeOfDay = &clock
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	receiptID := uuid.NewString()

	items, err := s.buildItems(ctx, receiptID, req.Items, audit)
	if err != nil {
		return nil, err
	}
	taxCharges, err := s.buildTaxCharges(ctx, receiptID, req.TaxCharges, audit)
	if err != nil {
		return nil, err
	}
	payments, err := s.buildPayments(ctx, receiptID, req.Payments, audit)
	if err != nil {
		return nil, err
	}

	var imagePath string
	if req.ImageFilename != nil {
		imagePath = utils.ReceiptImagePath(receiptID, supplier.Name, date, *req.ImageFilename)
	}

	receipt := domain.Receipt{
		ReceiptID:   receiptID,
		SupplierID:  req.SupplierID,
		Supplier:    supplier,
		Date:        date,
		Time:        timeOfDay,
		ImagePath:   imagePath,
		Items:       items,
		Fees:        s.buildFees(receiptID, req.Fees, audit),
		Discounts:   s.buildDiscounts(receiptID, req.Discounts, audit),
		TaxCharges:  taxCharges,
		Gratuities:  s.buildGratuities(receiptID, req.Gratuities, audit),
		Payments:    payments,
		AuditFields: audit,
	}

	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to create receipt", slog.String("receipt_id", receiptID))
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	s.LogInfo(ctx, "Receipt created",
		slog.String("receipt_id", receiptID),
		slog.String("supplier_id", req.SupplierID),
		slog.Int("item_count", len(items)))
	return &receipt, nil
}

func (s *receiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find receipt by ID", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}
	return receipt, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams) ([]domain.Receipt, error) {
	filter := portsrepo.ListReceiptsFilter{
		From:       params.From,
		To:         params.To,
		SupplierID: params.SupplierID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	receipts, err := s.receiptRepo.ListReceipts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts")
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	if receipts == nil {
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest, updaterUserID string) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find receipt for update", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}

	if req.SupplierID != nil {
		supplier, err := s.checkSupplier(ctx, *req.SupplierID)
		if err != nil {
			s.LogError(ctx, err, "Failed to validate receipt supplier", slog.String("supplier_id", *req.SupplierID))
			return nil, err
		}
		receipt.SupplierID = *req.SupplierID
		receipt.Supplier = supplier
	}
	if req.Date != nil {
		date, err := parseReceiptDate(*req.Date)
		if err != nil {
			return nil, err
		}
		receipt.Date = date
	}
	if req.ClearTime {
		receipt.Time = nil
	} else if req.Time != nil {
		clock, err := parseReceiptTime(*req.Time)
		if err != nil {
			return nil, err
		}
		receipt.Time = &clock
	}

	if req.ImageFilename != nil {
		supplierName := receipt.SupplierID
		if receipt.Supplier != nil {
			supplierName = receipt.Supplier.Name
		}
		receipt.ImagePath = utils.ReceiptImagePath(receiptID, supplierName, receipt.Date, *req.ImageFilename)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     updaterUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: updaterUserID,
	}

	if req.Items != nil {
		items, err := s.buildItems(ctx, receiptID, *req.Items, audit)
		if err != nil {
			return nil, err
		}
		receipt.Items = items
	}
	if req.Fees != nil {
		receipt.Fees = s.buildFees(receiptID, *req.Fees, audit)
	}
	if req.Discounts != nil {
		receipt.Discounts = s.buildDiscounts(receiptID, *req.Discounts, audit)
	}
	if req.TaxCharges != nil {
		taxCharges, err := s.buildTaxCharges(ctx, receiptID, *req.TaxCharges, audit)
		if err != nil {
			return nil, err
		}
		receipt.TaxCharges = taxCharges
	}
	if req.Gratuities != nil {
		receipt.Gratuities = s.buildGratuities(receiptID, *req.Gratuities, audit)
	}
	if req.Payments != nil {
		payments, err := s.buildPayments(ctx, receiptID, *req.Payments, audit)
		if err != nil {
			return nil, err
		}
		receipt.Payments = payments
	}
	receipt.LastUpdatedAt = now
	receipt.LastUpdatedBy = updaterUserID

	if err := s.receiptRepo.UpdateReceipt(ctx, *receipt); err != nil {
		s.LogError(ctx, err, "Failed to update receipt", slog.String("receipt_id", receiptID))
		return nil, fmt.Errorf("failed to update receipt: %w", err)
	}

	s.LogInfo(ctx, "Receipt updated", slog.String("receipt_id", receiptID))
	return receipt, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, receiptID string) error {
	if err := s.receiptRepo.DeleteReceipt(ctx, receiptID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete receipt", slog.String("receipt_id", receiptID))
		}
		return err
	}
	s.LogInfo(ctx, "Receipt deleted", slog.String("receipt_id", receiptID))
	return nil
}

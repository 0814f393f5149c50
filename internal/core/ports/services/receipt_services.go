package services

import (
	"context"

	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/dto"
)

// ReceiptSvcFacade defines the service operations for receipt aggregates.
type ReceiptSvcFacade interface {
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, creatorUserID string) (*domain.Receipt, error)
	GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, params dto.ListReceiptsParams) ([]domain.Receipt, error)
	UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest, updaterUserID string) (*domain.Receipt, error)
	DeleteReceipt(ctx context.Context, receiptID string) error
}

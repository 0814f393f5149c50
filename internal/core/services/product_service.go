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

// productTypeService implements the ProductTypeSvcFacade interface
type productTypeService struct {
	BaseService
	productTypeRepo portsrepo.ProductTypeRepositoryFacade
}

// NewProductTypeService creates a new product type service
func NewProductTypeService(productTypeRepo portsrepo.ProductTypeRepositoryFacade) portssvc.ProductTypeSvcFacade {
	return &productTypeService{productTypeRepo: productTypeRepo}
}

var _ portssvc.ProductTypeSvcFacade = (*productTypeService)(nil)

func (s *productTypeService) CreateProductType(ctx context.Context, req dto.CreateProductTypeRequest, creatorUserID string) (*domain.ProductType, error) {
	now := time.Now()
	productType := domain.ProductType{
		ProductTypeID: uuid.NewString(),
		Name:          req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productTypeRepo.SaveProductType(ctx, productType); err != nil {
		s.LogError(ctx, err, "Failed to create product type", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product type: %w", err)
	}

	s.LogInfo(ctx, "Product type created", slog.String("product_type_id", productType.ProductTypeID))
	return &productType, nil
}

func (s *productTypeService) GetProductTypeByID(ctx context.Context, productTypeID string) (*domain.ProductType, error) {
	productType, err := s.productTypeRepo.FindProductTypeByID(ctx, productTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product type by ID", slog.String("product_type_id", productTypeID))
		}
		return nil, err
	}
	return productType, nil
}

func (s *productTypeService) ListProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	types, err := s.productTypeRepo.ListProductTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list product types")
		return nil, fmt.Errorf("failed to list product types: %w", err)
	}
	if types == nil {
		return []domain.ProductType{}, nil
	}
	return types, nil
}

func (s *productTypeService) UpdateProductType(ctx context.Context, productTypeID string, req dto.UpdateProductTypeRequest, updaterUserID string) (*domain.ProductType, error) {
	productType, err := s.productTypeRepo.FindProductTypeByID(ctx, productTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product type for update", slog.String("product_type_id", productTypeID))
		}
		return nil, err
	}

	if req.Name != nil {
		productType.Name = *req.Name
	}
	productType.LastUpdatedAt = time.Now()
	productType.LastUpdatedBy = updaterUserID

	if err := s.productTypeRepo.UpdateProductType(ctx, *productType); err != nil {
		s.LogError(ctx, err, "Failed to update product type", slog.String("product_type_id", productTypeID))
		return nil, fmt.Errorf("failed to update product type: %w", err)
	}

	s.LogInfo(ctx, "Product type updated", slog.String("product_type_id", productTypeID))
	return productType, nil
}

func (s *productTypeService) DeleteProductType(ctx context.Context, productTypeID string) error {
	if err := s.productTypeRepo.DeleteProductType(ctx, productTypeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product type", slog.String("product_type_id", productTypeID))
		}
		return err
	}
	s.LogInfo(ctx, "Product type deleted", slog.String("product_type_id", productTypeID))
	return nil
}

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	productRepo     portsrepo.ProductRepositoryFacade
	productTypeRepo portsrepo.ProductTypeReader
}

// NewProductService creates a new product service
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, productTypeRepo portsrepo.ProductTypeReader) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo, productTypeRepo: productTypeRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// resolveTypes validates every referenced product type and returns them in
// request order.
func (s *productService) resolveTypes(ctx context.Context, typeIDs []string) ([]domain.ProductType, error) {
	types := make([]domain.ProductType, 0, len(typeIDs))
	for _, typeID := range typeIDs {
		productType, err := s.productTypeRepo.FindProductTypeByID(ctx, typeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown product type %s", apperrors.ErrValidation, typeID)
			}
			return nil, fmt.Errorf("failed to resolve product type %s: %w", typeID, err)
		}
		types = append(types, *productType)
	}
	return types, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	types, err := s.resolveTypes(ctx, req.TypeIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve product types", slog.String("name", req.Name))
		return nil, err
	}

	now := time.Now()
	productID := uuid.NewString()
	var imagePath string
	if req.ImageFilename != nil {
		imagePath = utils.ProductImagePath(productID, req.Name, *req.ImageFilename, now)
	}
	product := domain.Product{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		ImagePath:   imagePath,
		Types:       types,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to create product", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product for update", slog.String("product_id", productID))
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.TypeIDs != nil {
		types, err := s.resolveTypes(ctx, *req.TypeIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve product types", slog.String("product_id", productID))
			return nil, err
		}
		product.Types = types
	}
	if req.ImageFilename != nil {
		product.ImagePath = utils.ProductImagePath(productID, product.Name, *req.ImageFilename, time.Now())
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.LogInfo(ctx, "Product updated", slog.String("product_id", productID))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		}
		return err
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}

func (s *productService) SearchProducts(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	products, err := s.productRepo.SearchProductsByName(ctx, query, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to search products", slog.String("query", query))
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

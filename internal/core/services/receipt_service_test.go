package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/gridlined/Itemizer/internal/core/domain"
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/core/services"
	"github.com/gridlined/Itemizer/internal/dto"
)

// --- Mock ReceiptRepository ---
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, filter portsrepo.ListReceiptsFilter) ([]domain.Receipt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindReceiptsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Receipt, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}

// --- Mock ProductReader ---
type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductReader) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductReader) SearchProductsByName(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Mock TaxReader ---
type MockTaxReader struct {
	mock.Mock
}

func (m *MockTaxReader) FindTaxByID(ctx context.Context, taxID string) (*domain.Tax, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tax), args.Error(1)
}

func (m *MockTaxReader) ListTaxes(ctx context.Context) ([]domain.Tax, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tax), args.Error(1)
}

// --- Mock PaymentMethodReader ---
type MockPaymentMethodReader struct {
	mock.Mock
}

func (m *MockPaymentMethodReader) FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodReader) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

// --- Test Suite ---
type ReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo  *MockReceiptRepository
	mockSupplierRepo *MockSupplierRepository
	mockProductRepo  *MockProductReader
	mockTaxRepo      *MockTaxReader
	mockMethodRepo   *MockPaymentMethodReader
	service          portssvc.ReceiptSvcFacade
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockProductRepo = new(MockProductReader)
	suite.mockTaxRepo = new(MockTaxReader)
	suite.mockMethodRepo = new(MockPaymentMethodReader)
	suite.service = services.NewReceiptService(
		suite.mockReceiptRepo,
		suite.mockSupplierRepo,
		suite.mockProductRepo,
		suite.mockTaxRepo,
		suite.mockMethodRepo,
	)
}

// --- Test Cases ---

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	supplierID := uuid.NewString()
	productID := uuid.NewString()
	taxID := uuid.NewString()
	methodID := uuid.NewString()

	req := dto.CreateReceiptRequest{
		SupplierID: supplierID,
		Date:       "2024-05-03",
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("3.87")},
		},
		TaxCharges: []dto.CreateReceiptTaxChargeRequest{
			{TaxID: taxID, Amount: decimal.RequireFromString("0.70")},
		},
		Payments: []dto.CreateReceiptPaymentRequest{
			{PaymentMethodID: methodID, Amount: decimal.RequireFromString("8.44")},
		},
	}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(&domain.Supplier{SupplierID: supplierID, Name: "Trader Joes"}, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(&domain.Product{ProductID: productID}, nil).Once()
	suite.mockTaxRepo.On("FindTaxByID", ctx, taxID).Return(&domain.Tax{TaxID: taxID, Name: "Sales Tax"}, nil).Once()
	suite.mockMethodRepo.On("FindPaymentMethodByID", ctx, methodID).Return(&domain.PaymentMethod{PaymentMethodID: methodID}, nil).Once()
	suite.mockReceiptRepo.On("SaveReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.SupplierID == supplierID &&
			len(r.Items) == 1 && r.Items[0].ReceiptID == r.ReceiptID &&
			len(r.TaxCharges) == 1 && r.TaxCharges[0].TaxName == "Sales Tax" &&
			len(r.Payments) == 1 &&
			r.CreatedBy == creatorUserID
	})).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.NotEmpty(receipt.ReceiptID)
	suite.Equal("2024-05-03", receipt.Date.Format("2006-01-02"))
	suite.Nil(receipt.Time)
	suite.Equal(domain.StatusPaid, receipt.Status())

	suite.mockReceiptRepo.AssertExpectations(suite.T())
	suite.mockSupplierRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockTaxRepo.AssertExpectations(suite.T())
	suite.mockMethodRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_UnknownSupplier() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	receipt, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		SupplierID: supplierID,
		Date:       "2024-05-03",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "SaveReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_UnknownProduct() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	productID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(&domain.Supplier{SupplierID: supplierID}, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	receipt, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		SupplierID: supplierID,
		Date:       "2024-05-03",
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "SaveReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_InvalidDate() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(&domain.Supplier{SupplierID: supplierID}, nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		SupplierID: supplierID,
		Date:       "05/03/2024",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_DerivesImagePath() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	filename := "scan.jpg"

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(&domain.Supplier{SupplierID: supplierID, Name: "Trader Joes"}, nil).Once()
	suite.mockReceiptRepo.On("SaveReceipt", ctx, mock.AnythingOfType("domain.Receipt")).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		SupplierID:    supplierID,
		Date:          "2024-05-03",
		ImageFilename: &filename,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(receipt.ImagePath, "receipt/2024/05/03/"), "got %q", receipt.ImagePath)
	suite.True(strings.HasSuffix(receipt.ImagePath, "_trader_joes.jpg"), "got %q", receipt.ImagePath)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestUpdateReceipt_ReplacesProvidedLines() {
	ctx := context.Background()
	receiptID := uuid.NewString()
	methodID := uuid.NewString()
	updaterUserID := uuid.NewString()

	existing := &domain.Receipt{
		ReceiptID:  receiptID,
		SupplierID: uuid.NewString(),
		Date:       time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
		Items: []domain.Item{
			{ItemID: uuid.NewString(), ReceiptID: receiptID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5)},
		},
	}

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, receiptID).Return(existing, nil).Once()
	suite.mockMethodRepo.On("FindPaymentMethodByID", ctx, methodID).Return(&domain.PaymentMethod{PaymentMethodID: methodID}, nil).Once()
	suite.mockReceiptRepo.On("UpdateReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.ReceiptID == receiptID &&
			len(r.Items) == 1 && // untouched collection survives
			len(r.Payments) == 1 && r.Payments[0].PaymentMethodID == methodID &&
			r.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	payments := []dto.CreateReceiptPaymentRequest{
		{PaymentMethodID: methodID, Amount: decimal.NewFromInt(5)},
	}
	receipt, err := suite.service.UpdateReceipt(ctx, receiptID, dto.UpdateReceiptRequest{Payments: &payments}, updaterUserID)

	suite.Require().NoError(err)
	suite.Len(receipt.Payments, 1)
	suite.Len(receipt.Items, 1)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
	suite.mockMethodRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestUpdateReceipt_NotFound() {
	ctx := context.Background()
	receiptID := uuid.NewString()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, receiptID).Return(nil, apperrors.ErrNotFound).Once()

	receipt, err := suite.service.UpdateReceipt(ctx, receiptID, dto.UpdateReceiptRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReceiptServiceTestSuite) TestUpdateReceipt_ClearTime() {
	ctx := context.Background()
	receiptID := uuid.NewString()
	noon := time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)

	existing := &domain.Receipt{
		ReceiptID:  receiptID,
		SupplierID: uuid.NewString(),
		Date:       time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
		Time:       &noon,
	}

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, receiptID).Return(existing, nil).Once()
	suite.mockReceiptRepo.On("UpdateReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.Time == nil
	})).Return(nil).Once()

	receipt, err := suite.service.UpdateReceipt(ctx, receiptID, dto.UpdateReceiptRequest{ClearTime: true}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(receipt.Time)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestDeleteReceipt_NotFound() {
	ctx := context.Background()
	receiptID := uuid.NewString()

	suite.mockReceiptRepo.On("DeleteReceipt", ctx, receiptID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteReceipt(ctx, receiptID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}

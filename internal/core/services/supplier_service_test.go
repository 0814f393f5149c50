package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/gridlined/Itemizer/internal/core/domain"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/core/services"
	"github.com/gridlined/Itemizer/internal/dto"
)

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) SearchSuppliersByName(ctx context.Context, query string, limit int) ([]domain.Supplier, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

// --- Test Suite ---
type SupplierServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSupplierRepository
	service  portssvc.SupplierSvcFacade
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSupplierRepository)
	suite.service = services.NewSupplierService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *SupplierServiceTestSuite) TestCreateSupplier_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateSupplierRequest{
		Name:       "Trader Joes",
		City:       "Portland",
		State:      "OR",
		PostalCode: "97201",
	}

	suite.mockRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.Name == req.Name && s.City == req.City && s.State == req.State && s.CreatedBy == creatorUserID && s.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(supplier)
	suite.NotEmpty(supplier.SupplierID)
	suite.Equal(req.Name, supplier.Name)
	suite.Equal(creatorUserID, supplier.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_SaveError() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{Name: "Err Mart"}

	suite.mockRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(assert.AnError).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(supplier)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestGetSupplierByID_Success() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	expected := &domain.Supplier{SupplierID: supplierID, Name: "Trader Joes"}

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(expected, nil).Once()

	supplier, err := suite.service.GetSupplierByID(ctx, supplierID)

	suite.Require().NoError(err)
	suite.Equal(expected, supplier)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestGetSupplierByID_NotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	supplier, err := suite.service.GetSupplierByID(ctx, supplierID)

	suite.Require().Error(err)
	suite.Nil(supplier)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListSuppliers", ctx, 50, 0).Return([]domain.Supplier(nil), nil).Once()

	suppliers, err := suite.service.ListSuppliers(ctx, 50, 0)

	suite.Require().NoError(err)
	suite.NotNil(suppliers)
	suite.Empty(suppliers)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_Success() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	updaterUserID := uuid.NewString()
	existing := &domain.Supplier{SupplierID: supplierID, Name: "Old Name", City: "Portland"}
	newName := "New Name"

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.SupplierID == supplierID && s.Name == newName && s.City == "Portland" && s.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	supplier, err := suite.service.UpdateSupplier(ctx, supplierID, dto.UpdateSupplierRequest{Name: &newName}, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, supplier.Name)
	suite.Equal("Portland", supplier.City)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_NotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	supplier, err := suite.service.UpdateSupplier(ctx, supplierID, dto.UpdateSupplierRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(supplier)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestDeleteSupplier_Success() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockRepo.On("DeleteSupplier", ctx, supplierID).Return(nil).Once()

	err := suite.service.DeleteSupplier(ctx, supplierID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestSearchSuppliers_Success() {
	ctx := context.Background()
	expected := []domain.Supplier{{SupplierID: uuid.NewString(), Name: "Trader Joes"}}

	suite.mockRepo.On("SearchSuppliersByName", ctx, "trader", 10).Return(expected, nil).Once()

	suppliers, err := suite.service.SearchSuppliers(ctx, "trader", 10)

	suite.Require().NoError(err)
	suite.Equal(expected, suppliers)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}

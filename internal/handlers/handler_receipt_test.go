package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/gridlined/Itemizer/internal/core/domain"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/dto"
	"github.com/gridlined/Itemizer/internal/handlers"
	"github.com/gridlined/Itemizer/internal/middleware"
)

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, creatorUserID string) (*domain.Receipt, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams) ([]domain.Receipt, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest, updaterUserID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) DeleteReceipt(ctx context.Context, receiptID string) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

// --- Test Suite ---
type ReceiptHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockReceiptService *MockReceiptService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ReceiptHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "itemizer-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReceiptHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockReceiptService = new(MockReceiptService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReceiptRoutes(v1, suite.mockReceiptService)
}

// --- Test Cases ---

func (suite *ReceiptHandlerTestSuite) TestGetReceiptByID_Success() {
	receiptID := uuid.NewString()
	userID := uuid.NewString()

	receipt := &domain.Receipt{
		ReceiptID:  receiptID,
		SupplierID: uuid.NewString(),
		Date:       time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
		Items: []domain.Item{
			{ItemID: uuid.NewString(), ReceiptID: receiptID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("3.87")},
		},
		Payments: []domain.Payment{
			{PaymentID: uuid.NewString(), ReceiptID: receiptID, Amount: decimal.RequireFromString("7.74")},
		},
	}
	suite.mockReceiptService.On("GetReceiptByID", mock.Anything, receiptID).Return(receipt, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/receipts/%s", receiptID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ReceiptResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(receiptID, body.ReceiptID)
	suite.Equal("2024-05-03", body.Date)
	suite.Equal("$7.74", body.SubtotalUSD)
	suite.Equal("$7.74", body.TotalUSD)
	suite.Equal(domain.StatusPaid, body.Status)

	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestGetReceiptByID_NotFound() {
	receiptID := uuid.NewString()

	suite.mockReceiptService.On("GetReceiptByID", mock.Anything, receiptID).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/receipts/%s", receiptID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestCreateReceipt_Success() {
	userID := uuid.NewString()
	supplierID := uuid.NewString()

	payload := map[string]any{
		"supplierId": supplierID,
		"date":       "2024-05-03",
	}
	body, _ := json.Marshal(payload)

	created := &domain.Receipt{
		ReceiptID:  uuid.NewString(),
		SupplierID: supplierID,
		Date:       time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
	}
	suite.mockReceiptService.On("CreateReceipt", mock.Anything, mock.MatchedBy(func(r dto.CreateReceiptRequest) bool {
		return r.SupplierID == supplierID && r.Date == "2024-05-03"
	}), userID).Return(created, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestCreateReceipt_ValidationError() {
	userID := uuid.NewString()
	supplierID := uuid.NewString()

	payload := map[string]any{
		"supplierId": supplierID,
		"date":       "2024-05-03",
	}
	body, _ := json.Marshal(payload)

	suite.mockReceiptService.On("CreateReceipt", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("%w: unknown supplier %s", apperrors.ErrValidation, supplierID)).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestCreateReceipt_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockReceiptService.AssertNotCalled(suite.T(), "CreateReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptHandlerTestSuite) TestListReceipts_ParsesFilters() {
	userID := uuid.NewString()
	supplierID := uuid.NewString()

	suite.mockReceiptService.On("ListReceipts", mock.Anything, mock.MatchedBy(func(p dto.ListReceiptsParams) bool {
		return p.From != nil && p.From.Format("2006-01-02") == "2024-01-01" &&
			p.To != nil && p.To.Format("2006-01-02") == "2024-12-31" &&
			p.SupplierID == supplierID
	})).Return([]domain.Receipt{}, nil).Once()

	url := fmt.Sprintf("/api/v1/receipts?from=2024-01-01&to=2024-12-31&supplierId=%s", supplierID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestListReceipts_BadDate() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/receipts?from=yesterday", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReceiptService.AssertNotCalled(suite.T(), "ListReceipts", mock.Anything, mock.Anything)
}

func (suite *ReceiptHandlerTestSuite) TestDeleteReceipt_Success() {
	receiptID := uuid.NewString()

	suite.mockReceiptService.On("DeleteReceipt", mock.Anything, receiptID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/receipts/%s", receiptID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func TestReceiptHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}

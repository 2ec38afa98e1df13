package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
	"github.com/nimbusworks/intranet_portal_app/internal/handlers"
	"github.com/nimbusworks/intranet_portal_app/internal/middleware"
)

// --- Mock AssetService ---
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) ListAssets(ctx context.Context, actor domain.Actor) ([]domain.Asset, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetService) GetAssetByID(ctx context.Context, actor domain.Actor, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, actor, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) CreateAsset(ctx context.Context, actor domain.Actor, req dto.CreateAssetRequest) (*domain.Asset, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) UpdateAsset(ctx context.Context, actor domain.Actor, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	args := m.Called(ctx, actor, assetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) DeleteAsset(ctx context.Context, actor domain.Actor, assetID string) error {
	args := m.Called(ctx, actor, assetID)
	return args.Error(0)
}

func (m *MockAssetService) RestoreAsset(ctx context.Context, actor domain.Actor, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, actor, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) PurgeAsset(ctx context.Context, actor domain.Actor, assetID string) error {
	args := m.Called(ctx, actor, assetID)
	return args.Error(0)
}

var _ portssvc.AssetSvcFacade = (*MockAssetService)(nil)

// --- Test Suite ---
type AssetHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAssetService
	jwtSecret   string
}

func (suite *AssetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidations()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockAssetService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAssetRoutes(v1, suite.mockService)
}

// generateTestToken creates a portal JWT for the given identity and role.
func (suite *AssetHandlerTestSuite) generateTestToken(email, role string) string {
	claims := middleware.PortalClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "portal-test",
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AssetHandlerTestSuite) doRequest(method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AssetHandlerTestSuite) TestListAssets_Success() {
	expected := []domain.Asset{
		{AssetID: "1", Name: "MacBook Pro 14", Status: domain.AssetStatusAssigned},
		{AssetID: "2", Name: "Monitor", Status: domain.AssetStatusAvailable},
	}
	suite.mockService.On("ListAssets", mock.Anything, mock.MatchedBy(func(a domain.Actor) bool {
		return a.Email == "member@nimbusworks.example" && a.Role == domain.RoleMember
	})).Return(expected, nil).Once()

	token := suite.generateTestToken("member@nimbusworks.example", "MEMBER")
	w := suite.doRequest(http.MethodGet, "/api/v1/assets", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AssetListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Assets, 2)
	suite.Equal("MacBook Pro 14", body.Assets[0].Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AssetHandlerTestSuite) TestListAssets_MissingTokenUnauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/assets", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListAssets")
}

func (suite *AssetHandlerTestSuite) TestGetAsset_NotFoundMapsTo404() {
	suite.mockService.On("GetAssetByID", mock.Anything, mock.Anything, "99").
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken("member@nimbusworks.example", "MEMBER")
	w := suite.doRequest(http.MethodGet, "/api/v1/assets/99", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AssetHandlerTestSuite) TestCreateAsset_Success() {
	created := &domain.Asset{AssetID: "7", Name: "Standing Desk", Status: domain.AssetStatusAvailable}
	suite.mockService.On("CreateAsset", mock.Anything, mock.Anything, mock.MatchedBy(func(req dto.CreateAssetRequest) bool {
		return req.Name == "Standing Desk" && req.PurchaseDate == "2026-02-01"
	})).Return(created, nil).Once()

	token := suite.generateTestToken("admin@nimbusworks.example", "ADMIN")
	w := suite.doRequest(http.MethodPost, "/api/v1/assets", token, map[string]any{
		"name":         "Standing Desk",
		"purchaseDate": "2026-02-01",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var body domain.Asset
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("7", body.AssetID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AssetHandlerTestSuite) TestCreateAsset_MissingNameRejected() {
	token := suite.generateTestToken("admin@nimbusworks.example", "ADMIN")
	w := suite.doRequest(http.MethodPost, "/api/v1/assets", token, map[string]any{
		"category": "Furniture",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateAsset")
}

func (suite *AssetHandlerTestSuite) TestCreateAsset_BadDateRejected() {
	token := suite.generateTestToken("admin@nimbusworks.example", "ADMIN")
	w := suite.doRequest(http.MethodPost, "/api/v1/assets", token, map[string]any{
		"name":         "Standing Desk",
		"purchaseDate": "01/02/2026",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateAsset")
}

func (suite *AssetHandlerTestSuite) TestDeleteAsset_NoContent() {
	suite.mockService.On("DeleteAsset", mock.Anything, mock.Anything, "7").Return(nil).Once()

	token := suite.generateTestToken("member@nimbusworks.example", "MEMBER")
	w := suite.doRequest(http.MethodDelete, "/api/v1/assets/7", token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AssetHandlerTestSuite) TestPurgeAsset_ForbiddenMapsTo403() {
	suite.mockService.On("PurgeAsset", mock.Anything, mock.Anything, "7").
		Return(apperrors.ErrForbidden).Once()

	token := suite.generateTestToken("member@nimbusworks.example", "MEMBER")
	w := suite.doRequest(http.MethodDelete, "/api/v1/assets/7/purge", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *AssetHandlerTestSuite) TestListAssets_StoreFailureMapsTo502() {
	suite.mockService.On("ListAssets", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrFetch).Once()

	token := suite.generateTestToken("member@nimbusworks.example", "MEMBER")
	w := suite.doRequest(http.MethodGet, "/api/v1/assets", token, nil)

	suite.Equal(http.StatusBadGateway, w.Code)
}

// --- Run Suite ---
func TestAssetHandler(t *testing.T) {
	suite.Run(t, new(AssetHandlerTestSuite))
}

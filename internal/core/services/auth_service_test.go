package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/core/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
	"github.com/nimbusworks/intranet_portal_app/internal/utils"
)

const testJWTSecret = "test-secret-not-for-production"

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	service portssvc.AuthSvc
}

func (suite *AuthServiceTestSuite) SetupTest() {
	hash, err := utils.HashPassword("correct horse battery staple")
	suite.Require().NoError(err)

	suite.service = services.NewAuthService(services.AuthServiceConfig{
		AdminEmail:        "admin@nimbusworks.example",
		AdminName:         "Portal Admin",
		AdminPasswordHash: hash,
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "intranet-portal-backend",
	})
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	resp, err := suite.service.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@nimbusworks.example",
		Password: "correct horse battery staple",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.Token)
	suite.WithinDuration(time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	suite.Require().NoError(err)
	claims := token.Claims.(jwt.MapClaims)
	suite.Equal("admin@nimbusworks.example", claims["sub"])
	suite.Equal("ADMIN", claims["role"])
	suite.Equal("intranet-portal-backend", claims["iss"])
}

func (suite *AuthServiceTestSuite) TestLogin_EmailIsCaseInsensitive() {
	resp, err := suite.service.Login(context.Background(), dto.LoginRequest{
		Email:    "ADMIN@nimbusworks.example",
		Password: "correct horse battery staple",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	resp, err := suite.service.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@nimbusworks.example",
		Password: "wrong",
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	_, err := suite.service.Login(context.Background(), dto.LoginRequest{
		Email:    "intruder@nimbusworks.example",
		Password: "correct horse battery staple",
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestLogin_DisabledWithoutPasswordHash() {
	service := services.NewAuthService(services.AuthServiceConfig{
		AdminEmail: "admin@nimbusworks.example",
		JWTSecret:  testJWTSecret,
	})

	_, err := service.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@nimbusworks.example",
		Password: "",
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Run Suite ---
func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils"
	"github.com/jakiurshovon/Purchase-Web-App/pkg/config"
)

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	cfg      *config.Config
	mockRepo *MockUserRepository
	userSvc  portssvc.UserSvcFacade
	tokenSvc portssvc.TokenSvcFacade
	authSvc  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "purchase-web-app-test",
	}
	suite.mockRepo = new(MockUserRepository)
	suite.userSvc = services.NewUserService(suite.mockRepo)
	suite.tokenSvc = services.NewTokenService(suite.cfg)
	suite.authSvc = services.NewAuthService(suite.userSvc, suite.tokenSvc)
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestTokenRoundTrip() {
	ctx := context.Background()
	userID := uuid.NewString()

	token, err := suite.tokenSvc.GenerateToken(ctx, userID)
	suite.Require().NoError(err)
	suite.NotEmpty(token)

	subject, err := suite.tokenSvc.VerifyToken(token)
	suite.Require().NoError(err)
	suite.Equal(userID, subject)
}

func (suite *AuthServiceTestSuite) TestVerifyToken_Garbage() {
	_, err := suite.tokenSvc.VerifyToken("not-a-jwt")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestVerifyToken_WrongSecret() {
	forged, err := utils.GenerateJWT(uuid.NewString(), "another-secret", time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	_, err = suite.tokenSvc.VerifyToken(forged)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret-password")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "shovon",
		AuthProvider: domain.ProviderLocal,
		PasswordHash: hash,
	}
	suite.mockRepo.On("FindUserByUsername", ctx, "shovon").Return(stored, nil).Once()

	resp, err := suite.authSvc.Login(ctx, dto.LoginRequest{Username: "shovon", Password: "secret-password"})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal(stored.UserID, resp.User.UserID)

	subject, err := suite.tokenSvc.VerifyToken(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(stored.UserID, subject)
}

func (suite *AuthServiceTestSuite) TestLogin_BadCredentials() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "shovon").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.authSvc.Login(ctx, dto.LoginRequest{Username: "shovon", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Role authorizer ---

func (suite *AuthServiceTestSuite) TestAuthorizeAdmin() {
	ctx := context.Background()
	adminID := uuid.NewString()
	memberID := uuid.NewString()
	authorizer := services.NewRoleAuthorizer(suite.mockRepo)

	suite.mockRepo.On("FindUserByID", ctx, adminID).Return(&domain.User{UserID: adminID, Role: domain.RoleAdmin}, nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, memberID).Return(&domain.User{UserID: memberID, Role: domain.RoleMember}, nil).Once()

	suite.NoError(authorizer.AuthorizeAdmin(ctx, adminID))
	suite.ErrorIs(authorizer.AuthorizeAdmin(ctx, memberID), apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestAuthorizeAdmin_UnknownUser() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	authorizer := services.NewRoleAuthorizer(suite.mockRepo)

	suite.mockRepo.On("FindUserByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	suite.ErrorIs(authorizer.AuthorizeAdmin(ctx, unknownID), apperrors.ErrForbidden)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

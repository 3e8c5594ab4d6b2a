package services

import (
	"context"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
)

// UserSvcFacade defines user account operations.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
	CreateOAuthUser(ctx context.Context, email, name string, provider domain.AuthProvider) (*domain.User, error)
}

// TokenSvcFacade issues and verifies access tokens.
type TokenSvcFacade interface {
	GenerateToken(ctx context.Context, userID string) (string, error)
	VerifyToken(tokenString string) (string, error)
}

// GoogleOAuthSvcFacade handles the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	GetAuthCodeURL(state string) string
	ExchangeCodeForUser(ctx context.Context, code string) (*domain.User, error)
}

// RoleAuthorizerSvc answers role checks for guarded operations.
type RoleAuthorizerSvc interface {
	// AuthorizeAdmin returns apperrors.ErrForbidden when the user does not
	// hold the ADMIN role.
	AuthorizeAdmin(ctx context.Context, userID string) error
}

// AuthSvcFacade bundles the operations the auth handlers need.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterUserRequest) (dto.UserResponse, error)
}

package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portsrepo "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/repositories"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils"
	"github.com/jakiurshovon/Purchase-Web-App/pkg/config"
)

// tokenService implements the TokenSvcFacade for issuing and verifying JWTs.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateToken(ctx context.Context, userID string) (string, error) {
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

// VerifyToken validates a token string and returns the user ID it carries.
func (s *tokenService) VerifyToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}

// authService implements the login and registration flows on top of the user
// and token services.
type authService struct {
	BaseService
	userSvc  portssvc.UserSvcFacade
	tokenSvc portssvc.TokenSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userSvc portssvc.UserSvcFacade, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{userSvc: userSvc, tokenSvc: tokenSvc}
}

// Login authenticates a username/password pair and issues an access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	user, err := s.userSvc.AuthenticateUser(ctx, req.Username, req.Password)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	token, err := s.tokenSvc.GenerateToken(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate token", "user_id", user.UserID)
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

// Register creates a new local account.
func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest) (dto.UserResponse, error) {
	user, err := s.userSvc.RegisterUser(ctx, req)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.ToUserResponse(user), nil
}

// googleOAuthService implements the Google sign-in flow.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
	userSvc      portssvc.UserSvcFacade
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		userSvc: userSvc,
	}
}

// GetAuthCodeURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthService) GetAuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForUser exchanges an OAuth authorization code for a verified
// identity, creating the local account on first sign-in.
func (s *googleOAuthService) ExchangeCodeForUser(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("oauth token response is missing id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("google ID token is missing the email claim")
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	user, err := s.userSvc.GetUserByUsername(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}
	return s.userSvc.CreateOAuthUser(ctx, email, name, domain.ProviderGoogle)
}

// roleAuthorizer answers role checks against the user store.
type roleAuthorizer struct {
	userRepo portsrepo.UserReader
}

// NewRoleAuthorizer creates a new instance of roleAuthorizer.
func NewRoleAuthorizer(userRepo portsrepo.UserReader) portssvc.RoleAuthorizerSvc {
	return &roleAuthorizer{userRepo: userRepo}
}

// AuthorizeAdmin returns apperrors.ErrForbidden unless the user holds the
// ADMIN role.
func (a *roleAuthorizer) AuthorizeAdmin(ctx context.Context, userID string) error {
	user, err := a.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to look up user for authorization: %w", err)
	}
	if !user.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}

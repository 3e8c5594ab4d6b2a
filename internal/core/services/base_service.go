package services

import (
	"context"
	"log/slog"

	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	RoleAuthorizer portssvc.RoleAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeAdmin checks that the user holds the ADMIN role.
func (s *BaseService) AuthorizeAdmin(ctx context.Context, userID string) error {
	if s.RoleAuthorizer != nil {
		return s.RoleAuthorizer.AuthorizeAdmin(ctx, userID)
	}
	// No authorizer wired: allow, but make it visible in development logs.
	s.LogDebug(ctx, "No role authorizer provided, access granted by default",
		slog.String("user_id", userID))
	return nil
}

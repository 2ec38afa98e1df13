package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	"github.com/nimbusworks/intranet_portal_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

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
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequirePrivileged denies the action unless the actor is an admin or a
// manager.
func (s *BaseService) RequirePrivileged(ctx context.Context, actor domain.Actor, action string) error {
	if actor.Privileged() {
		return nil
	}
	s.LogDebug(ctx, "Privileged action denied",
		slog.String("action", action),
		slog.String("actor_email", actor.Email),
		slog.String("actor_role", string(actor.Role)))
	return fmt.Errorf("%s requires an admin or manager role: %w", action, apperrors.ErrForbidden)
}

// RequireAdmin denies the action unless the actor is an admin.
func (s *BaseService) RequireAdmin(ctx context.Context, actor domain.Actor, action string) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	s.LogDebug(ctx, "Admin action denied",
		slog.String("action", action),
		slog.String("actor_email", actor.Email),
		slog.String("actor_role", string(actor.Role)))
	return fmt.Errorf("%s requires an admin role: %w", action, apperrors.ErrForbidden)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
	"github.com/nimbusworks/intranet_portal_app/internal/utils"
)

// AuthServiceConfig carries everything the local login needs. Only a
// single bootstrap admin credential is supported; everyone else gets
// tokens from the identity provider.
type AuthServiceConfig struct {
	AdminEmail        string
	AdminName         string
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
}

type authService struct {
	BaseService
	cfg AuthServiceConfig
}

// NewAuthService creates the local development login service.
func NewAuthService(cfg AuthServiceConfig) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" ||
		!strings.EqualFold(req.Email, s.cfg.AdminEmail) ||
		!utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash) {
		s.LogDebug(ctx, "Login rejected", slog.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
	}

	token, expiresAt, err := utils.GeneratePortalJWT(
		s.cfg.AdminEmail,
		s.cfg.AdminName,
		string(domain.RoleAdmin),
		s.cfg.JWTSecret,
		s.cfg.JWTExpiryDuration,
		s.cfg.JWTIssuer,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "Local admin login", slog.String("email", s.cfg.AdminEmail))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

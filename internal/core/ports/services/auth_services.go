package services

import (
	"context"

	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// AuthSvc issues portal tokens for the local development login. In
// production the portal trusts tokens minted by the identity provider.
type AuthSvc interface {
	// Login verifies the credentials and returns a signed bearer token.
	// Returns apperrors.ErrForbidden on bad credentials.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

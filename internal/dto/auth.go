package dto

import "time"

// LoginRequest is the local development login. Production tokens are
// issued by the company identity provider; this endpoint only exists so
// the portal can run without one.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

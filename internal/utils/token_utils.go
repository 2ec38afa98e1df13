package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GeneratePortalJWT generates a signed portal token. The subject is the
// actor's email; name and role ride along as custom claims matched by
// the auth middleware.
func GeneratePortalJWT(email, name, role, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := jwt.MapClaims{
		"iss":  issuer,
		"sub":  email,
		"name": name,
		"role": role,
		"exp":  jwt.NewNumericDate(expiresAt),
		"iat":  jwt.NewNumericDate(now),
		"nbf":  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, expiresAt, err
}

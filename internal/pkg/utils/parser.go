package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry reads the `exp` claim of a bearer token without verifying it.
// The lab backend owns the signing key; this is only used to size the local
// session lifetime. ok is false when the token is not a JWT or has no expiry.
func TokenExpiry(tokenString string) (expiresAt time.Time, ok bool) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return time.Time{}, false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}

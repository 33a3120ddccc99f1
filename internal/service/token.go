package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenSubject returns the sub claim of a forwarded JWT without verifying
// its signature, or "" when the token is not a JWT or carries no subject.
// The result is for request logs only and must not be trusted for access
// decisions.
func TokenSubject(raw string) string {
	if raw == "" {
		return ""
	}
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

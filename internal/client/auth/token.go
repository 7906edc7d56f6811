package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/vetclinic/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry reads the exp claim of a JWT without verifying its signature;
// the server remains the authority on validity. A token without exp yields a
// zero time and no error.
func tokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// expired reports whether exp is at or before now. Zero exp never expires.
func expired(exp, now time.Time) bool {
	return !exp.IsZero() && !exp.After(now)
}

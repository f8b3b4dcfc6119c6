package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// parser is shared; jwt.Parser holds only options and is safe for
// concurrent use.
var parser = jwt.NewParser()

// Decode reads the claims out of a raw JWT without verifying its signature.
// The result is only good for display and expiry checks; the issuer still
// decides whether the token is accepted.
func Decode(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrMalformed
	}

	var claims Claims
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return claims, nil
}

// IsExpired reports whether the raw token carries an exp claim that lies
// before now. A token that cannot be decoded, or that has no exp claim, is
// reported as not expired.
func IsExpired(raw string, now time.Time) bool {
	claims, err := Decode(raw)
	if err != nil {
		return false
	}

	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Before(now)
}

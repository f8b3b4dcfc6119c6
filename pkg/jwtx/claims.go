package jwtx

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim names issued by the storefront service. The service is an ASP.NET
// identity provider, so user attributes travel under the WS-Federation
// claim URIs instead of short OIDC names.
const (
	ClaimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimEmail          = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	ClaimMobilePhone    = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/mobilephone"
	ClaimName           = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimRole           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

// Claims are the access-token claims the storefront reads. Only the
// registered time claims and the identity attributes are decoded; anything
// else in the payload is ignored.
type Claims struct {
	jwt.RegisteredClaims

	NameIdentifier string    `json:"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier,omitempty"`
	Email          string    `json:"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress,omitempty"`
	MobilePhone    string    `json:"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/mobilephone,omitempty"`
	Name           string    `json:"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name,omitempty"`
	Roles          RoleClaim `json:"http://schemas.microsoft.com/ws/2008/06/identity/claims/role,omitempty"`
}

// RoleClaim is the role claim, which the issuer writes as a bare string for
// a single role and as an array for several.
type RoleClaim []string

// UnmarshalJSON accepts both the string and the array encoding.
func (r *RoleClaim) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*r = nil
			return nil
		}
		*r = RoleClaim{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*r = RoleClaim(many)
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryAt(time.Now().UTC())
}

// ValidateExpiryAt is ValidateExpiry against a caller supplied clock.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	// Check expired (exp)
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	// Check if a valid token isn't used before it is valid (nbf)
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}

// HasRole reports whether the role claim contains role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

package shopsdk

import (
	"fmt"
	"strings"

	"github.com/aussiebroadwan/storefront/pkg/jwtx"
)

// TokenSource supplies the bearer token for authenticated requests. An empty
// string means no token; the request is then sent without Authorization.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns itself.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Session performs authenticated operations with whatever token its source
// currently holds.
type Session struct {
	client *Client
	tokens TokenSource
}

// Token returns the token the next request would carry.
func (s *Session) Token() string {
	if s.tokens == nil {
		return ""
	}
	return s.tokens.Token()
}

// Roles returns the role claim of the current token, or nil when the token
// is absent or undecodable.
func (s *Session) Roles() []string {
	claims, err := jwtx.Decode(s.Token())
	if err != nil {
		return nil
	}
	return claims.Roles
}

// checkRoles checks if the session has all required roles.
// Returns an error if role checking is enabled and roles are missing.
func (s *Session) checkRoles(required ...string) error {
	if !s.client.CheckRoles || len(required) == 0 {
		return nil
	}

	// An undecodable token holds no roles.
	claims, _ := jwtx.Decode(s.Token())

	var missing []string
	for _, role := range required {
		if !claims.HasRole(role) {
			missing = append(missing, role)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRole, strings.Join(missing, ", "))
	}

	return nil
}

// signalIfExpired fires the notifier when token has locally expired. A
// missing or malformed token never fires.
func (s *Session) signalIfExpired(token string) bool {
	if s.client.Notifier == nil || token == "" {
		return false
	}
	if !jwtx.IsExpired(token, s.client.now()) {
		return false
	}

	s.client.Notifier.NotifyUnauthorized()
	return true
}

package domain

// SessionState is the phase of the local authentication session.
type SessionState int

const (
	// Unauthenticated means no token is held.
	Unauthenticated SessionState = iota
	// Optimistic means a token is held and User was decoded from its claims
	// but not yet confirmed by the profile endpoint.
	Optimistic
	// Authenticated means User is the service's own projection.
	Authenticated
)

func (s SessionState) String() string {
	switch s {
	case Optimistic:
		return "optimistic"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// User is the signed-in customer as the storefront shows them.
type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Phone string   `json:"phone,omitempty"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is a point-in-time copy of the session directory.
type Session struct {
	Token           string       `json:"-"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *User        `json:"user"`
	State           SessionState `json:"-"`
}

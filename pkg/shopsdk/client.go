package shopsdk

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is where the storefront service listens in development.
const DefaultBaseURL = "http://localhost:5126/api/"

// DefaultTimeout bounds every request made with NewClient's HTTP client.
const DefaultTimeout = 10 * time.Second

// UnauthorizedNotifier is told when a request was rejected with 401 while
// the token it carried had already expired locally. It is called at most
// once per request.
type UnauthorizedNotifier interface {
	NotifyUnauthorized()
}

// NotifierFunc adapts a function to UnauthorizedNotifier.
type NotifierFunc func()

func (f NotifierFunc) NotifyUnauthorized() { f() }

// Client is a client for the storefront REST service.
// It provides access to public operations and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Limiter, when set, paces every outgoing request. A nil limiter
	// means unlimited.
	Limiter *rate.Limiter

	// Notifier receives the unauthorized signal. Nil disables it.
	Notifier UnauthorizedNotifier

	// CheckRoles makes Session refuse role-gated calls locally when the
	// token's role claim lacks the role, saving a round trip. The service
	// enforces roles regardless. Default: true
	CheckRoles bool

	// Now is the clock used for the local expiry check.
	Now func() time.Time
}

// NewClient creates a client for baseURL with role checking enabled.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		CheckRoles: true,
		Now:        time.Now,
	}
}

// NewSession returns a Session that reads its bearer token from tokens on
// every request, so login and logout take effect without rebuilding it.
func (c *Client) NewSession(tokens TokenSource) *Session {
	return &Session{client: c, tokens: tokens}
}

// NewSessionFromToken returns a Session pinned to a single raw token. Used
// to validate a freshly issued token before it is stored.
func (c *Client) NewSessionFromToken(token string) *Session {
	return c.NewSession(StaticToken(token))
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

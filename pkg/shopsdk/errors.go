package shopsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// Sentinel errors
// ============================================================================

var (
	// ErrUnauthorized matches any APIError with HTTP 401. The gateway never
	// unwraps a 401 into a message; callers always see this.
	ErrUnauthorized = errors.New("shopsdk: unauthorized")

	// ErrForbidden matches any APIError with HTTP 403.
	ErrForbidden = errors.New("shopsdk: forbidden")

	// ErrNotFound matches any APIError with HTTP 404.
	ErrNotFound = errors.New("shopsdk: not found")

	// ErrRejected matches APIErrors the service reported as a failed
	// envelope or a 4xx other than 401/403/404 (validation failures).
	ErrRejected = errors.New("shopsdk: request rejected")

	// ErrMissingRole is returned before a request is sent when role
	// checking is enabled and the token lacks a required role.
	ErrMissingRole = errors.New("shopsdk: missing required role")
)

// DefaultFailureMessage is used when the service gives no Message.
const DefaultFailureMessage = "Request failed."

// ============================================================================
// APIError
// ============================================================================

// APIError is a failure reported by the storefront service, either through
// a non-2xx status or an envelope with success=false.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`

	// Message is the envelope Message, or the operation's fallback text.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Is maps the status code onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRejected:
		return e.StatusCode < http.StatusInternalServerError &&
			e.StatusCode != http.StatusUnauthorized &&
			e.StatusCode != http.StatusForbidden &&
			e.StatusCode != http.StatusNotFound
	}
	return false
}

// Temporary reports whether the failure is on the service side and a later
// attempt could succeed. The SDK itself never retries.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// Message returns the user-facing text for err: the service's message for
// an APIError, or fallback for anything else (transport failures included).
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if fallback == "" {
		return DefaultFailureMessage
	}
	return fallback
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns a failed response into an APIError. The body is
// expected to be an envelope; anything else falls back to the status text.
func parseErrorResponse(status int, env *envelope, fallback string) error {
	msg := fallback
	if env != nil && env.Message != "" {
		msg = env.Message
	}
	if msg == "" {
		if status == http.StatusUnauthorized {
			msg = "Unauthorized."
		} else {
			msg = DefaultFailureMessage
		}
	}

	return &APIError{
		StatusCode: status,
		Message:    msg,
	}
}

package shopsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// envelope is the wrapper every storefront response uses. Message arrives
// capitalised from the service; encoding/json matches it case-insensitively.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// url builds a complete URL by appending the path and query to the base URL.
func (c *Client) url(path string, query url.Values) string {
	u := c.BaseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// jsonBody encodes v for a request body. A nil v means no body.
func jsonBody(v any) (io.Reader, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.NewReader(b), nil
}

// doRequest performs an HTTP request with the Client's HTTP client. token
// may be empty, in which case no Authorization header is sent.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload any,
	token string,
) (*http.Response, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if reqID := slogx.RequestID(ctx); reqID != "" {
		req.Header.Set(slogx.RequestIDHeader, reqID)
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	slogx.FromContext(ctx).Debug("gateway request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return resp, nil
}

// doAuthRequest performs a request carrying the session's token. A 401
// response raises the unauthorized signal when the token has expired
// locally; the 401 itself is still returned to the caller.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload any,
	requiredRoles ...string,
) (*http.Response, error) {
	if err := s.checkRoles(requiredRoles...); err != nil {
		return nil, err
	}

	token := s.Token()

	resp, err := s.client.doRequest(ctx, method, path, query, payload, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && s.signalIfExpired(token) {
		slogx.FromContext(ctx).Info("request rejected with expired token", "path", path)
	}

	return resp, nil
}

// decodeEnvelope reads a response envelope and unmarshals its data into
// target. target may be nil when the caller only needs success.
func decodeEnvelope(resp *http.Response, target any, fallback string) error {
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	parsed := len(bytes.TrimSpace(bodyBytes)) > 0 && json.Unmarshal(bodyBytes, &env) == nil

	// 401 is never unwrapped into data, whatever the body says.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if !parsed {
			return parseErrorResponse(resp.StatusCode, nil, fallback)
		}
		return parseErrorResponse(resp.StatusCode, &env, fallback)
	}

	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}
	if !parsed {
		return fmt.Errorf("failed to decode response: invalid envelope")
	}

	if env.Success != nil && !*env.Success {
		return parseErrorResponse(resp.StatusCode, &env, fallback)
	}

	if target == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// readBlob returns the raw body of a successful response. Failures are
// decoded as envelopes.
func readBlob(resp *http.Response, fallback string) ([]byte, string, error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", decodeEnvelope(resp, nil, fallback)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	return b, resp.Header.Get("Content-Type"), nil
}

// call bundles a public request with envelope decoding.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, payload, target any, fallback string) error {
	resp, err := c.doRequest(ctx, method, path, query, payload, "")
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, target, fallback)
}

// call bundles an authenticated request with envelope decoding.
func (s *Session) call(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload, target any,
	fallback string,
	requiredRoles ...string,
) error {
	resp, err := s.doAuthRequest(ctx, method, path, query, payload, requiredRoles...)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, target, fallback)
}

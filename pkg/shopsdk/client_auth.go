package shopsdk

import (
	"context"
	"fmt"
	"net/http"
)

// Credential operations. None of them send a bearer token; each returns the
// raw token the service issued.

// Login exchanges an email and password for a token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	return c.issueToken(ctx, "Auth/login", req, "Login failed.")
}

// Register creates an account and returns its first token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	return c.issueToken(ctx, "Auth/register", req, "Registration failed.")
}

// LoginWithGoogle exchanges a Google id token for a storefront token.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	return c.issueToken(ctx, "Auth/signin-google", GoogleLoginRequest{IDToken: idToken}, "Google login failed.")
}

func (c *Client) issueToken(ctx context.Context, path string, payload any, fallback string) (string, error) {
	var tok TokenResponse
	if err := c.call(ctx, http.MethodPost, path, nil, payload, &tok, fallback); err != nil {
		return "", err
	}

	if tok.Token == "" {
		return "", fmt.Errorf("failed to decode response: %s returned no token", path)
	}

	return tok.Token, nil
}

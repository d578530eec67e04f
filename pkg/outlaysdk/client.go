package outlaysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the Outlay API. It exposes the unauthenticated endpoints
// directly and creates authenticated Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, username, email, password string) (*UserResponse, error) {
	body, err := json.Marshal(SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/signup", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login exchanges credentials for a bearer token and returns an
// authenticated Session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	token, err := c.LoginToken(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return newSession(c, token), nil
}

// LoginToken exchanges credentials for the raw token response. Most callers
// want Login instead.
func (c *Client) LoginToken(ctx context.Context, username, password string) (*TokenResponse, error) {
	body, err := json.Marshal(LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := decodeJSON(resp, &token, http.StatusOK); err != nil {
		return nil, err
	}

	return &token, nil
}

// SessionFromToken creates a Session from a previously obtained access
// token.
func (c *Client) SessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// Livez checks the liveness endpoint.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz checks the readiness endpoint. A degraded service returns both the
// response body and a non-nil *APIError.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an unauthenticated HTTP request.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

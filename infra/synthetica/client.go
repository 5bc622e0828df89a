package synthetica

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CredentialProvider supplies the user_id session cookie value for API
// authentication. An empty value means "not signed in" and is simply omitted.
type CredentialProvider interface {
	CookieValue() string
}

// Client is a thin HTTP wrapper for the Synthetica API.
// It handles base URL construction and session cookie injection.
type Client struct {
	baseURL string
	creds   CredentialProvider
	http    *http.Client
}

// NewClient creates a Synthetica API client.
func NewClient(baseURL string, creds CredentialProvider) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		http:    &http.Client{},
	}
}

// APIError is a non-2xx response from the API, with the server's error
// payload when one was provided.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API returned %d", e.StatusCode)
}

// Get performs a GET request carrying the session cookie.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request carrying the session cookie.
func (c *Client) Post(ctx context.Context, path string, body io.Reader) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if v := c.creds.CookieValue(); v != "" {
		req.AddCookie(&http.Cookie{Name: "user_id", Value: v})
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	return data, nil
}

// errorMessage extracts the server's {"error": "..."} payload; falls back to
// the raw body for non-JSON errors.
func errorMessage(data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}

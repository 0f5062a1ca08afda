// Package recordstore is a thin HTTP client for the records backend, the
// PostgREST-style service that owns the tracking tables (emotions, thoughts,
// journals, goals, practice results) and the auth endpoint. This service
// never writes domain records; the client is read-only by design of the
// integration contract.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the records backend REST API.
type Client struct {
	BaseURL    string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a records backend client.
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Query fetches rows from a backend table using PostgREST-style filter
// parameters and returns the raw JSON array body.
func (c *Client) Query(ctx context.Context, table string, params map[string]string) ([]byte, error) {
	return c.QueryWithToken(ctx, table, params, "")
}

// QueryWithToken fetches rows using the caller's JWT so the backend's row
// level security applies. Falls back to the service key when no token is
// provided.
func (c *Client) QueryWithToken(ctx context.Context, table string, params map[string]string, userToken string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.BaseURL, table)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("apikey", c.ServiceKey)
	if userToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", userToken))
	} else {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("records backend error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// AuthenticatedUser is the identity the backend attaches to a verified token.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// VerifyToken asks the records backend to validate a bearer token and
// returns the authenticated user, including the role claim (client,
// therapist, admin) used for viewing-client authorization.
func (c *Client) VerifyToken(ctx context.Context, token string) (*AuthenticatedUser, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token verification failed (status %d): %s", resp.StatusCode, string(body))
	}

	var user AuthenticatedUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}

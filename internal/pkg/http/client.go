package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"time"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
)

// Client is a JSON HTTP client for communicating with the admin backend
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do builds and executes a JSON request against the backend. A non-empty
// bearer token is attached as an Authorization header; a nil body sends no
// request body.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}, bearer string) (*nethttp.Response, error) {
	var reqBody *bytes.Buffer

	var req *nethttp.Request
	var err error

	if body != nil {
		jsonData, jsonErr := json.Marshal(body)
		if jsonErr != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", jsonErr)
		}
		reqBody = bytes.NewBuffer(jsonData)
		req, err = nethttp.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	} else {
		req, err = nethttp.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.httpClient.Do(req)
}

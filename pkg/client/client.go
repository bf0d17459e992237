// Package client provides a Go client for the readlens HTTP service.
//
// It wraps the health check and both analysis endpoints, handling JSON
// serialization and mapping non-2xx responses to *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sanonone/readlens/pkg/analysis"
)

const (
	// DefaultTimeout bounds analysis requests.
	DefaultTimeout = 5 * time.Second
	// HealthTimeout bounds health checks.
	HealthTimeout = 2 * time.Second
)

// --- Custom Errors ---

// APIError represents an error returned by the service (status >= 400).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// --- Client ---

// Client talks to one readlens service instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL, e.g.
// "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Health reports whether the service answers its health check with
// status "healthy". Connection failures return false and the error.
func (c *Client) Health(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	respBody, err := c.jsonRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return false, err
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(respBody, &health); err != nil {
		return false, fmt.Errorf("failed to parse health response: %w", err)
	}
	return health.Status == "healthy", nil
}

// AnalyzeReadability scores text on the service.
func (c *Client) AnalyzeReadability(ctx context.Context, text string) (*analysis.ServiceReadabilityResponse, error) {
	respBody, err := c.jsonRequest(ctx, http.MethodPost, "/analyze/readability", analysis.Request{Text: text})
	if err != nil {
		return nil, err
	}

	var resp analysis.ServiceReadabilityResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse readability response: %w", err)
	}
	return &resp, nil
}

// AnalyzeKeywords runs the keyword analysis of text on the service,
// reporting the density of each target keyword.
func (c *Client) AnalyzeKeywords(ctx context.Context, text string, targets []string) (*analysis.KeywordResponse, error) {
	payload := analysis.Request{Text: text, TargetKeywords: targets}
	respBody, err := c.jsonRequest(ctx, http.MethodPost, "/analyze/keywords", payload)
	if err != nil {
		return nil, err
	}

	var resp analysis.KeywordResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse keyword response: %w", err)
	}
	return &resp, nil
}

// jsonRequest executes a request against the API.
// It handles JSON serialization, HTTP calls, and error management.
func (c *Client) jsonRequest(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp analysis.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	return respBody, nil
}

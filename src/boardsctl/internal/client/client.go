// Package client is the boardsctl HTTP client for the boardsd API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boards/snapshot"
)

// Client is an HTTP client for the boardsd API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIError represents a structured API error
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	var base string
	if e.ErrorCode != "" {
		base = fmt.Sprintf("%s: %s (HTTP %d)", e.ErrorCode, e.Message, e.StatusCode)
	} else {
		base = fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	if e.Field != "" {
		base += "\nField: " + e.Field
	}

	switch e.StatusCode {
	case 400:
		return base + "\nHint: Check the snapshot, selection and history documents."
	case 404:
		return base + "\nHint: Endpoint not found. Is --server pointing at boardsd?"
	case 429:
		return base + "\nHint: Rate limited by the server. Retry in a minute."
	}
	return base
}

// HealthResponse is the body of GET /v1/health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// VersionResponse is the body of GET /v1/version
type VersionResponse struct {
	Version        string `json:"version"`
	ReleaseName    string `json:"release_name"`
	ReleaseVersion string `json:"release_version"`
	BuildDate      string `json:"build_date"`
	GitCommit      string `json:"git_commit"`
	GoVersion      string `json:"go_version"`
}

// New creates a new API client
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body, result interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

// Health returns the server health status
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.Get(ctx, "/v1/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Version returns the server version
func (c *Client) Version(ctx context.Context) (*VersionResponse, error) {
	var resp VersionResponse
	if err := c.Get(ctx, "/v1/version", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BoardsList builds the boards list of in on the server
func (c *Client) BoardsList(ctx context.Context, in snapshot.Input) (*boards.ListView, error) {
	var view boards.ListView
	if err := c.Post(ctx, "/v1/boards-list", in, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Ports returns the detected ports of in, restricted to protocol when it is
// not empty
func (c *Client) Ports(ctx context.Context, in snapshot.Input, protocol string) (*boards.PortList, error) {
	path := "/v1/boards-list/ports"
	if protocol != "" {
		path += "?" + url.Values{"protocol": {protocol}}.Encode()
	}
	var ports boards.PortList
	if err := c.Post(ctx, path, in, &ports); err != nil {
		return nil, err
	}
	return &ports, nil
}

// PortsGrouped returns the detected ports of in grouped by protocol
func (c *Client) PortsGrouped(ctx context.Context, in snapshot.Input) (map[string]boards.PortList, error) {
	var groups map[string]boards.PortList
	if err := c.Post(ctx, "/v1/boards-list/ports?grouped=true", in, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	endpoint := c.BaseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, result)
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return &APIError{
				StatusCode: resp.StatusCode,
				ErrorCode:  errResp.Error,
				Message:    errResp.Message,
				Field:      errResp.Field,
			}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Package backend talks to the board's REST backend. The backend is an
// external collaborator: this package consumes its endpoints as-is and owns
// no persistence of its own.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type Client struct {
	logger     *zap.Logger
	origin     string
	httpClient *http.Client
}

// New builds a client for the backend reachable at origin, e.g.
// "http://backend:8000". A trailing slash on origin is tolerated.
func New(logger *zap.Logger, origin string) *Client {
	return &Client{
		logger:     logger,
		origin:     strings.TrimRight(origin, "/"),
		httpClient: &http.Client{},
	}
}

// Origin returns the configured backend origin.
func (c *Client) Origin() string {
	return c.origin
}

// getList fetches a JSON array from the backend. The server contract is
// newest-first ordering; the client does not re-sort.
func getList[T any](c *Client, ctx context.Context, endpoint string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.origin+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request to %s: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(endpoint, resp.StatusCode, body)
	}

	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response from %s: %w", endpoint, err)
	}

	return out, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request to %s: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+endpoint, bytes.NewReader(payloadJSON))
	if err != nil {
		return nil, fmt.Errorf("create request to %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(endpoint, resp.StatusCode, body)
	}

	return body, nil
}

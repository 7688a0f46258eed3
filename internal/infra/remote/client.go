// Package remote fetches the initial task list over HTTP.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/taskwire"
)

// maxBodySize caps the response body read from the source.
const maxBodySize = 8 << 20

// Client implements domain.TaskSource with an HTTP GET.
type Client struct {
	HTTP *http.Client
	URL  string
}

// Ensure Client implements domain.TaskSource.
var _ domain.TaskSource = (*Client)(nil)

// NewClient creates a Client for url. A zero timeout means no timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the task list and validates its first limit elements.
func (c *Client) Fetch(ctx context.Context, limit int) (*domain.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	res, err := taskwire.DecodeJSON(body, limit)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.URL, err)
	}
	return res, nil
}

// Package client talks to the portfolio REST API.
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

	"github.com/Zachkp/portfolio/internal/model"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// Client reads lists from and posts contact messages to the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL (for example http://localhost:8001).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL reports where requests go.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Projects(ctx context.Context) ([]model.Project, error) {
	return getList[model.Project](ctx, c, "/api/projects")
}

func (c *Client) Certificates(ctx context.Context) ([]model.Certificate, error) {
	return getList[model.Certificate](ctx, c, "/api/certificates")
}

func (c *Client) Talks(ctx context.Context) ([]model.Talk, error) {
	return getList[model.Talk](ctx, c, "/api/talks")
}

// SendContact posts msg to /api/contact. Any 2xx counts as success; the
// response body is ignored.
func (c *Client) SendContact(ctx context.Context, msg model.ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode contact message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post contact message: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodPost, Path: "/api/contact", Code: resp.StatusCode}
	}
	return nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: http.MethodGet, Path: path, Code: resp.StatusCode}
	}

	items := []T{}
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muurk/tipsplit/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 3 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for failed requests
	DefaultMaxRetries = 2

	// DefaultRetryDelay is the default delay between retry attempts
	DefaultRetryDelay = 250 * time.Millisecond

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 2 * time.Second
)

// Client queries the status routes of a running tipsplit server
type Client struct {
	// BaseURL is the server root (e.g., "http://192.168.4.16:8080")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay is the maximum delay for exponential backoff
	MaxRetryDelay time.Duration
}

// New creates a client for the server at baseURL. A trailing slash is
// ignored.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:       strings.TrimSuffix(baseURL, "/"),
		HTTPClient:    &http.Client{Timeout: DefaultTimeout},
		MaxRetries:    DefaultMaxRetries,
		RetryDelay:    DefaultRetryDelay,
		MaxRetryDelay: DefaultMaxRetryDelay,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Ping checks /healthz. Returns nil if the server answers "ok".
func (c *Client) Ping(ctx context.Context) error {
	return c.withRetry(ctx, func() error {
		body, err := c.get(ctx, "/healthz")
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(body)) != "ok" {
			return newParseError("unexpected health response", nil)
		}
		return nil
	})
}

// Version fetches the server's build information from /version
func (c *Client) Version(ctx context.Context) (*version.Info, error) {
	var info version.Info
	err := c.withRetry(ctx, func() error {
		body, err := c.get(ctx, "/version")
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, &info); err != nil {
			return newParseError("failed to parse version response", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// get performs a single GET and returns the body of a 200 response
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, &ServerError{Type: ErrTypeNetwork, Message: "failed to create request", Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyNetworkError("GET "+path+" failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, newHTTPError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, classifyNetworkError("failed to read response body", err)
	}
	return body, nil
}

// withRetry runs attempt with exponential backoff until it succeeds, returns
// a non-retryable error, or the retries run out.
func (c *Client) withRetry(ctx context.Context, attempt func() error) error {
	var lastErr error
	delay := c.RetryDelay

	for i := 0; i <= c.MaxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return lastErr
			case <-time.After(delay):
			}
			delay *= 2
			if delay > c.MaxRetryDelay {
				delay = c.MaxRetryDelay
			}
		}

		err := attempt()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsRetryable(err) {
			return err
		}
	}
	return lastErr
}

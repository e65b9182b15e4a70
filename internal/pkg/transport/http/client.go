// Package http provides a configurable HTTP client with retry logic.
// It wraps the retryablehttp.Client from HashiCorp, exposes functional
// options for customizing timeouts and retry behavior, and offers a Fetch
// helper that returns the response body of a successful GET request.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrTimeout is returned when a request did not complete before its deadline.
var ErrTimeout = errors.New("request timed out")

// userAgent is sent with every request.
const userAgent = "btcanalyser"

// StatusError is returned by Fetch when the server answers with a
// non-successful HTTP status code.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Fetcher retrieves the raw body of a resource.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Fetcher interface {
	// Fetch issues a GET request to url and returns the response body.
	// It returns a *StatusError for non-2xx responses and wraps ErrTimeout
	// when the request deadline is exceeded.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// Client is a retrying HTTP client.
type Client struct {
	*retryablehttp.Client
}

// Compile-time assertion that Client implements the Fetcher interface.
var _ Fetcher = (*Client)(nil)

// NewClient creates and returns a Client configured with the provided
// options. If no options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//
// Once retries are exhausted the last response or error is handed back
// untouched, so callers can still inspect the final status code.
func NewClient(opts ...Option) *Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return &Client{Client: client}
}

// Fetch issues a GET request to url and returns the full response body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	res, err := c.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, err
	}

	return body, nil
}

// isTimeout reports whether err was caused by an exceeded deadline, either
// the client timeout or the context deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

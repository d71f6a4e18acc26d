// Package http provides the GET transport used by the resource clients. It
// wraps hashicorp/go-retryablehttp with retries disabled by default: a
// non-200 response is an immediate hard failure for the triggering call
// unless the caller opts in to a retry policy.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/boardkit-io/trello/pkg/trello"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues GET requests against fully formed URLs.
type Client struct {
	retryClient *retryablehttp.Client
	logger      Logger
	debug       bool
	userAgent   string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the transport-level timeout for a single request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries for transient failures
// (5xx, 429, connection errors).
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a new transport client.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Hand back the final response even when the retry budget is spent so
	// the status check below can classify it.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		retryClient: retryClient,
		userAgent:   "boardkit-trello",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get issues a GET request against rawURL and returns the response. Any
// status other than 200 returns the response together with a
// trello.RequestFailedError carrying the request URL and status code.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":     http.MethodGet,
			"url":        redactURL(rawURL),
			"request_id": requestID,
		})
	}

	resp, err := c.retryClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":     resp.StatusCode,
			"url":        redactURL(rawURL),
			"request_id": requestID,
			"body_bytes": len(body),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if resp.StatusCode != http.StatusOK {
		return response, &trello.RequestFailedError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
		}
	}

	return response, nil
}

// redactURL masks the credential query parameters for log output. The
// returned URLs and errors keep the original values; only logs are redacted.
func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	for _, param := range []string{"key", "token"} {
		if query.Has(param) {
			query.Set(param, "REDACTED")
		}
	}

	parsed.RawQuery = query.Encode()

	return parsed.String()
}

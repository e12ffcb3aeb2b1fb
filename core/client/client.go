package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wishcowork/sitekit/core/config"
	"github.com/wishcowork/sitekit/core/logger"
)

var (
	// ErrTransport wraps network-level failures (connection refused, timeout).
	ErrTransport = errors.New("api client: transport error")
	// ErrDecode is returned when a response body cannot be decoded.
	ErrDecode = errors.New("api client: failed to decode response")
)

// APIError is a non-2xx response carrying the backend's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

// EnvConfig holds environment-tunable client settings.
type EnvConfig struct {
	Timeout time.Duration `env:"SITE_API_TIMEOUT" envDefault:"10s"`
}

// Client issues JSON requests against the configured backend. The base URL is
// resolved per request so a settings change takes effect immediately. When a
// token source is configured, requests carry a bearer Authorization header.
type Client struct {
	http    *http.Client
	baseURL func() string
	token   func() string
	log     *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithTokenSource sets the bearer token provider. An empty token means no
// Authorization header.
func WithTokenSource(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.token = fn
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client resolving its base URL through baseURL on every
// request. The default timeout comes from SITE_API_TIMEOUT (10s).
func New(baseURL func() string, opts ...Option) *Client {
	var envCfg EnvConfig
	config.MustLoad(&envCfg)

	c := &Client{
		http:    &http.Client{Timeout: envCfg.Timeout},
		baseURL: baseURL,
		token:   func() string { return "" },
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request and returns the raw JSON body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request with a JSON body and returns the raw JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, query, body)
}

// Put issues a PUT request with a JSON body and returns the raw JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, query, body)
}

// Delete issues a DELETE request and returns the raw JSON body.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, query, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	target := strings.TrimRight(c.baseURL(), "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api client: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("api client: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "request failed",
			logger.Component("client"), logger.URL(target), logger.Error(err))
		return nil, errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}

	c.log.DebugContext(ctx, "request completed",
		logger.Component("client"), logger.URL(target),
		slog.Int("status", resp.StatusCode), logger.Duration(time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	return raw, nil
}

// errorMessage pulls the backend's message out of an error body, trying the
// {error: ...} shape first, then {message: ...}.
func errorMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

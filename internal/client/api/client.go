// Package api implements the HTTP client for the LCchat server.
//
// Every request goes through the same interceptor pipeline: the outbound hook
// attaches the stored bearer credential, the inbound hook decodes the body
// envelope and evicts the credential on 401. The endpoint methods themselves
// only select method, path and payload shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultRequestTimeout terminates a request that neither completed
	// nor failed within this window.
	DefaultRequestTimeout = 10 * time.Second

	// HeaderRequestID carries a client-generated id for server-side log
	// correlation.
	HeaderRequestID = "X-Request-Id"

	contentTypeJSON = "application/json"
)

// TokenSource supplies the persisted bearer credential to the outbound hook.
// A missing credential is not an error: Token returns an empty string and
// the request is sent unauthenticated.
type TokenSource interface {
	// Token returns the stored credential, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// Invalidate removes the stored credential. Called by the inbound
	// hook when the server reports 401.
	Invalidate(ctx context.Context) error
}

// SessionExpiredFunc is invoked after the credential has been evicted on a
// 401 response. The application shell subscribes to it to send the user back
// to login; the transport layer itself performs no navigation.
type SessionExpiredFunc func()

// Client represents the HTTP client for the LCchat server
type Client struct {
	httpClient       *http.Client
	baseURL          string
	tokens           TokenSource
	onSessionExpired SessionExpiredFunc
	logger           *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout overrides the fixed request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithTokenSource wires the credential slot into the interceptor pipeline.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithSessionExpiredFunc registers the 401 subscriber.
func WithSessionExpiredFunc(fn SessionExpiredFunc) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new API client for the given base URL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zap.NewNop(),
		httpClient: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON performs a request with a JSON body (or no body) and decodes the
// response envelope into result.
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}
	return c.do(ctx, method, path, contentTypeJSON, bodyReader, result)
}

// do performs an HTTP request through the interceptor pipeline.
// contentType overrides the process-wide JSON default for a single call
// (used by the multipart avatar upload).
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, result any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	// Outbound hook: attach credential and request id.
	c.interceptRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Inbound hook, failure path.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.interceptFailure(ctx, resp.StatusCode, respBody)
	}

	// Inbound hook, success path: unwrap the body envelope. The
	// application-level code is not inspected here; that is the
	// caller's responsibility.
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// interceptRequest is the outbound hook. A missing credential is not an
// error: the request is sent unauthenticated and the server rejects it.
func (c *Client) interceptRequest(ctx context.Context, req *http.Request) {
	req.Header.Set(HeaderRequestID, uuid.NewString())

	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn("failed to read stored credential", zap.Error(err))
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// interceptFailure is the inbound hook for non-2xx responses. On 401 it
// evicts the stored credential and notifies the session-expired subscriber
// exactly once for the failing call; every other status is logged and
// returned unchanged as a *StatusError.
func (c *Client) interceptFailure(ctx context.Context, statusCode int, body []byte) error {
	if statusCode == http.StatusUnauthorized {
		c.logger.Info("unauthorized response, evicting stored credential")
		if c.tokens != nil {
			if err := c.tokens.Invalidate(ctx); err != nil {
				c.logger.Warn("failed to evict credential", zap.Error(err))
			}
		}
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
	} else {
		c.logger.Warn("request failed",
			zap.Int("status", statusCode),
			zap.ByteString("body", body))
	}
	return &StatusError{StatusCode: statusCode, Body: string(body)}
}

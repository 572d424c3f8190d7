// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeranaias/devguide-tui/internal/report"
)

// ErrUnreachable is the only error a Result ever carries.
const ErrUnreachable = "could not reach server"

// DefaultURL is the endpoint used when nothing else is configured.
const DefaultURL = "http://127.0.0.1:3000/predict"

// maxBodyBytes caps the response body. Larger bodies fail the request.
const maxBodyBytes = 8 << 20

// =============================================================================
// RESULT
// =============================================================================

// Result is the outcome of one submission: a decoded envelope, or an error
// message when the service could not be reached or understood.
type Result struct {
	Envelope *report.Envelope
	Err      string
}

// Failed reports whether the submission ended in a transport error.
func (r Result) Failed() bool {
	return r.Err != ""
}

// Succeeded wraps a decoded envelope.
func Succeeded(env *report.Envelope) Result {
	return Result{Envelope: env}
}

// Unreachable is the uniform transport failure.
func Unreachable() Result {
	return Result{Err: ErrUnreachable}
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the client.
type ClientConfig struct {
	// URL is the full prediction endpoint (default: DefaultURL)
	URL string

	// Timeout for one request. Zero disables the timeout.
	Timeout time.Duration

	// UserAgent sent with every request (default: "devguide")
	UserAgent string

	// Logger receives request events (default: no-op)
	Logger *zap.Logger

	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

// =============================================================================
// CLIENT
// =============================================================================

// Client posts descriptions to the recommendation service.
//
// The Client is safe for concurrent use. The endpoint can be swapped while
// requests are in flight; a request uses the endpoint current when it starts.
type Client struct {
	mu         sync.RWMutex
	url        string
	userAgent  string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client. A nil config uses the defaults.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = &ClientConfig{}
	}

	c := &Client{
		url:        config.URL,
		userAgent:  config.UserAgent,
		httpClient: config.HTTPClient,
		log:        config.Logger,
	}
	if c.url == "" {
		c.url = DefaultURL
	}
	if c.userAgent == "" {
		c.userAgent = "devguide"
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: config.Timeout}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Endpoint returns the URL the next submission will use.
func (c *Client) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url
}

// SetEndpoint changes the URL for later submissions. Empty URLs are ignored.
func (c *Client) SetEndpoint(url string) {
	if url == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.url != url {
		c.log.Info("ENDPOINT_CHANGED", zap.String("from", c.url), zap.String("to", url))
	}
	c.url = url
}

// =============================================================================
// SUBMIT
// =============================================================================

// Submit sends one description and returns the decoded envelope. It never
// retries and never returns a Go error; failures come back as Unreachable.
func (c *Client) Submit(ctx context.Context, description string) Result {
	url := c.Endpoint()
	reqID := uuid.NewString()
	log := c.log.With(zap.String("request_id", reqID), zap.String("url", url))
	start := time.Now()

	log.Info("REQUEST_START", zap.Int("description_len", len(description)))

	env, err := c.do(ctx, url, reqID, description)
	if err != nil {
		log.Warn("REQUEST_ERROR", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return Unreachable()
	}

	log.Info("REQUEST_COMPLETE",
		zap.Bool("success", env.Succeeded()),
		zap.Bool("has_code", env.HasCode()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Succeeded(env)
}

func (c *Client) do(ctx context.Context, url, reqID, description string) (*report.Envelope, error) {
	body, err := json.Marshal(report.NewRequest(description))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBodyBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var env report.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return &env, nil
}

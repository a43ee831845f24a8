// Package api is the client of the asset store's REST interface.
//
// Every authenticated call sends the session token as a bearer credential. A
// 401 or 403 clears the session and yields ErrUnauthorized so callers can send
// the user back to the login screen.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/JonMunkholm/itams/internal/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultBaseURL is the store address used when none is configured.
const DefaultBaseURL = "http://localhost:3001/api"

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Session supplies the bearer token and is told when it stops being valid.
type Session interface {
	Token() string
	ClearToken() error
}

// Client talks to the asset store.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New returns a client for baseURL without a session.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// With returns a copy of c bound to sess. The HTTP client is shared.
func (c *Client) With(sess Session) *Client {
	cp := *c
	cp.session = sess
	return &cp
}

// BaseURL returns the configured store address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) token() string {
	if c.session == nil {
		return ""
	}
	return c.session.Token()
}

// do sends a request and decodes a JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logging.FromContext(ctx).Debug("api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if c.session != nil {
			if err := c.session.ClearToken(); err != nil {
				logging.FromContext(ctx).Warn("failed to clear session", slog.String("error", err.Error()))
			}
		}
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return readError(resp)
	case resp.StatusCode == http.StatusNoContent || out == nil:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func readError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(b, &payload); err != nil {
		return newError(resp.StatusCode, unknownErrorMessage)
	}
	return newError(resp.StatusCode, payload.Message)
}

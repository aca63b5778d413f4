// Package scan is the client for the webprobe scanning API.
//
// The API exposes three read-only lookups — domain parsing, HTTP version
// support, and TLS configuration — each a GET request whose JSON body is
// passed through to the caller without schema validation. Transport failures
// never surface as Go errors: they are folded into the returned document under
// an "error" key, so every lookup settles with a value.
package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	"github.com/tbckr/webprobe/internal/apperr"
	"github.com/tbckr/webprobe/internal/httpclient"
)

const (
	// DefaultBaseURL is the hosted webprobe API.
	DefaultBaseURL = "https://api.webprobe.dev"
	// LocalBaseURL is the address of a locally running webprobe API.
	LocalBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds each individual request.
	DefaultTimeout = 5 * time.Second
)

// Document is the decoded JSON body of a lookup response. The remote schema is
// not part of this client's contract, so values stay untyped.
type Document map[string]any

// ErrorDocument wraps a failure message in the in-band error form callers
// check for.
func ErrorDocument(msg string) Document {
	return Document{"error": msg}
}

// IsError reports whether d carries an in-band failure.
func (d Document) IsError() bool {
	_, ok := d["error"]
	return ok
}

// Client issues lookups against one webprobe API.
//
// The transport handle is shared by all calls and fully rebuilt whenever the
// base address or timeout changes. Rebuilding is last-write-wins and is not
// synchronized with in-flight requests; reconfigure between bursts of
// activity, not during them.
type Client struct {
	baseURL     string
	timeout     time.Duration
	userAgent   string
	concurrency int
	debug       bool
	logger      *slog.Logger

	http *req.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseAddress sets the API base address. The empty string keeps the
// current (or default) value.
func WithBaseAddress(addr string) Option {
	return func(c *Client) {
		if addr != "" {
			c.baseURL = addr
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables the client-side
// deadline entirely; negative values keep the current (or default) value.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithConcurrency caps the number of in-flight requests per batch.
// Zero or negative means one goroutine per request.
func WithConcurrency(n int) Option {
	return func(c *Client) { c.concurrency = n }
}

// WithLogger sets the logger used for debug hooks and batch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDebug enables request/response logging on the transport.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.debug = debug }
}

// NewClient creates a Client. Without options it talks to DefaultBaseURL with
// DefaultTimeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rebuild()
	return c
}

// Configure applies opts and replaces the transport so subsequent calls
// observe the new values.
func (c *Client) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	c.rebuild()
}

// SetBaseAddress replaces the API base address and rebuilds the transport.
// Calling it twice with the same address is equivalent to calling it once.
func (c *Client) SetBaseAddress(addr string) {
	c.baseURL = addr
	c.rebuild()
}

// SetTimeout replaces the per-request timeout and rebuilds the transport.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
	c.rebuild()
}

// BaseAddress returns the configured API base address.
func (c *Client) BaseAddress() string { return c.baseURL }

// Timeout returns the configured per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Transport returns the active transport handle. The handle is replaced on
// every reconfiguration; callers must not cache it across SetBaseAddress or
// SetTimeout. Exposed for test instrumentation.
func (c *Client) Transport() *req.Client { return c.http }

// rebuild replaces the transport with one reflecting the current config.
// Invalid base addresses or timeouts are not validated here; they surface as
// request errors at call time.
func (c *Client) rebuild() {
	c.http = httpclient.New(httpclient.Config{
		BaseURL:   c.baseURL,
		Timeout:   c.timeout,
		UserAgent: c.userAgent,
		Logger:    c.logger,
		Debug:     c.debug,
	})
}

// Domain looks up domain-parsing data for target.
func (c *Client) Domain(ctx context.Context, target string) (Document, error) {
	return c.Lookup(ctx, OpDomain, target)
}

// HTTP looks up HTTP-version support for target.
func (c *Client) HTTP(ctx context.Context, target string) (Document, error) {
	return c.Lookup(ctx, OpHTTP, target)
}

// TLS looks up the TLS configuration of target.
func (c *Client) TLS(ctx context.Context, target string) (Document, error) {
	return c.Lookup(ctx, OpTLS, target)
}

// Lookup performs a single GET {base}/{operation}?url={target} and decodes the
// JSON response. Leading and trailing slashes on operation are stripped, so
// "/tls/" and "tls" address the same endpoint. The target is passed through
// unvalidated; the API is the authority on what it accepts.
//
// Transport failures — connection errors, timeouts, non-2xx statuses — are
// returned in-band as an ErrorDocument with a nil error. Well-formed bodies
// whose top level is not a JSON object (arrays, scalars, null) come back under
// a "data" key so callers always see a mapping. The only non-nil error is a
// malformed JSON body, wrapping apperr.ErrDecodeFailed.
func (c *Client) Lookup(ctx context.Context, operation, target string) (Document, error) {
	endpoint := "/" + strings.Trim(operation, "/")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("url", target).
		Get(endpoint)
	if err != nil {
		return ErrorDocument(fmt.Sprintf("%s: %s", apperr.ErrRequestFailed, err)), nil
	}
	if resp.Response == nil || !resp.IsSuccessState() {
		body := resp.String()
		if len(body) > 200 {
			body = body[:200] + "..."
		}
		return ErrorDocument(fmt.Sprintf("%s: HTTP %d: %q", apperr.ErrRequestFailed, resp.StatusCode, body)), nil
	}

	var payload any
	if err := resp.UnmarshalJson(&payload); err != nil {
		return nil, fmt.Errorf("%w: %s", apperr.ErrDecodeFailed, err)
	}
	if doc, ok := payload.(map[string]any); ok {
		return Document(doc), nil
	}
	return Document{"data": payload}, nil
}

// lookupSettled is Lookup with the decode hard-failure folded in-band as well.
// Batch uses it so one unparseable body cannot disturb sibling results.
func (c *Client) lookupSettled(ctx context.Context, operation, target string) Document {
	doc, err := c.Lookup(ctx, operation, target)
	if err != nil {
		if c.logger != nil && errors.Is(err, apperr.ErrDecodeFailed) {
			c.logger.Debug("lookup returned malformed JSON",
				"operation", operation,
				"target", target,
				"error", err,
			)
		}
		return ErrorDocument(err.Error())
	}
	return doc
}

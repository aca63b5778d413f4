// Package httpclient builds the req.Client used for all webprobe API calls.
package httpclient

import (
	"log/slog"
	"time"

	"github.com/imroc/req/v3"

	"github.com/tbckr/webprobe/internal/version"
)

// DefaultUserAgent is the User-Agent sent when no explicit value is configured.
// It identifies webprobe honestly so server operators can recognise its traffic.
// var (not const) because the version is resolved at run time from build metadata.
var DefaultUserAgent = "webprobe/" + version.Get().Version + " (+https://github.com/tbckr/webprobe)"

// Config holds everything needed to build a transport handle.
// Base address and timeout are applied as-is; invalid values surface as request
// errors at call time, never here.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
	Debug     bool
}

// New builds a *req.Client for the given config.
//
// Every client sends "Accept: application/json"; the API speaks nothing else.
// When cfg.Debug is true and cfg.Logger is non-nil, an OnAfterResponse hook is
// attached that logs the HTTP method, URL, and status code at DEBUG level.
// New never fails: base address and timeout are deliberately not validated
// locally, so reconfiguration is a plain replace.
func New(cfg Config) *req.Client {
	client := req.NewClient().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetCommonHeader("Accept", "application/json")

	if cfg.UserAgent != "" {
		client.SetUserAgent(cfg.UserAgent)
	} else {
		client.SetUserAgent(DefaultUserAgent)
	}

	if cfg.Debug && cfg.Logger != nil {
		attachDebugHook(client, cfg.Logger)
	}

	return client
}

// attachDebugHook registers an OnAfterResponse hook that logs the HTTP method,
// URL, and status code at DEBUG level, and logs a body snippet on non-2xx responses.
func attachDebugHook(client *req.Client, logger *slog.Logger) {
	client.OnAfterResponse(func(_ *req.Client, resp *req.Response) error {
		if resp.Request == nil || resp.Request.RawRequest == nil {
			return nil
		}
		logger.Debug("http response",
			"method", resp.Request.RawRequest.Method,
			"url", resp.Request.RawRequest.URL.String(),
			"status", resp.StatusCode,
		)
		if !resp.IsSuccessState() {
			body := resp.String()
			if len(body) > 512 {
				body = body[:512]
			}
			logger.Debug("http error body",
				"status", resp.StatusCode,
				"body", body,
			)
		}
		return nil
	})
}

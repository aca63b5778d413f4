// Package testutil provides shared test helpers.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/imroc/req/v3"
	"github.com/jarcoal/httpmock"
)

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ActivateMock attaches httpmock to the given transport handle and deactivates
// it when the test finishes. Must be called again after any reconfiguration
// that replaces the handle.
func ActivateMock(t *testing.T, client *req.Client) {
	t.Helper()
	httpmock.ActivateNonDefault(client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
}

package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/webprobe/internal/output"
	"github.com/tbckr/webprobe/internal/scan"
)

func TestFormat_Valid(t *testing.T) {
	assert.True(t, output.FormatJSON.Valid())
	assert.True(t, output.FormatPlain.Valid())
	assert.False(t, output.Format("table").Valid())
	assert.False(t, output.Format("").Valid())
}

func TestWrite_JSONSingle(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatJSON, scan.Document{"registrable_domain": "example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"registrable_domain": "example.com"}`, buf.String())
	assert.Contains(t, buf.String(), "\n  ", "json output should be indented")
}

func TestWrite_JSONMultiple(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatJSON,
		scan.Document{"a": float64(1)},
		scan.Document{"error": "request failed"},
	)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"a": 1}, {"error": "request failed"}]`, buf.String())
}

func TestWrite_PlainOneDocumentPerLine(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatPlain,
		scan.Document{"a": float64(1)},
		scan.Document{"b": float64(2)},
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"a": 1}`, lines[0])
	assert.JSONEq(t, `{"b": 2}`, lines[1])
	assert.NotContains(t, lines[0], "  ", "plain output must be compact")
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.Format("yaml"), scan.Document{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

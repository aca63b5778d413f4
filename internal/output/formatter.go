// Package output writes lookup results in the formats the CLI supports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tbckr/webprobe/internal/scan"
)

// Format is the output format requested by the user.
type Format string

// Output format constants supported by the --output flag.
const (
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatPlain
}

// Write renders docs to w. JSON output is an indented document (or array, for
// more than one result). Plain output is one compact JSON document per line,
// suitable for piping into jq or grep.
//
// Either way the server's JSON comes through structurally unmodified; the
// formats differ only in framing.
func Write(w io.Writer, format Format, docs ...scan.Document) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(docs) == 1 {
			return enc.Encode(docs[0])
		}
		return enc.Encode(docs)
	case FormatPlain:
		enc := json.NewEncoder(w)
		for _, doc := range docs {
			if err := enc.Encode(doc); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbckr/webprobe/internal/apperr"
	"github.com/tbckr/webprobe/internal/scan"
)

func newScanCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "scan [operation:target...]",
		Short:   "Run a mixed batch of lookups concurrently",
		GroupID: "lookup",
		Long: `Run several lookups of different operations as one concurrent batch.

Each spec has the form operation:target, where operation is one of domain,
http, or tls, and target is a hostname or URL. All requests are fired
concurrently and the batch waits for every one to settle; one failing request
never aborts the others. Output order always matches input order, with failed
entries carrying an "error" key.

Specs can be supplied as arguments or piped via stdin (one per line).`,
		Example: `  # Mixed batch in one call
  webprobe scan domain:example.com tls:example.com http:https://example.org

  # Bulk input from stdin
  printf 'tls:example.com\ndomain:example.org\n' | webprobe scan

  # Cap in-flight requests
  webprobe scan --concurrency 4 tls:a.example tls:b.example tls:c.example`,
		Args: cobra.ArbitraryArgs,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := resolveInputs(cmd, args)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no input: supply operation:target specs as arguments or pipe via stdin")
			}

			reqs := make([]scan.Request, len(inputs))
			for i, spec := range inputs {
				req, err := parseSpec(spec)
				if err != nil {
					return err
				}
				reqs[i] = req
			}

			docs := d.newScanClient().Batch(cmd.Context(), reqs)
			return writeResult(cmd.OutOrStdout(), d, docs...)
		},
	}
}

// parseSpec splits an operation:target spec at the first colon, so targets may
// themselves contain colons ("tls:https://example.com"). The operation is
// validated against the known API operations; the target is passed through to
// the API unvalidated.
func parseSpec(spec string) (scan.Request, error) {
	op, target, ok := strings.Cut(spec, ":")
	op = strings.Trim(strings.TrimSpace(op), "/")
	target = strings.TrimSpace(target)
	if !ok || op == "" || target == "" {
		return scan.Request{}, fmt.Errorf("%w: expected operation:target, got %q", apperr.ErrInvalidInput, spec)
	}

	for _, known := range scan.Operations() {
		if op == known {
			return scan.Request{Operation: op, Target: target}, nil
		}
	}
	return scan.Request{}, fmt.Errorf("%w: unknown operation %q in %q (expected one of %s)",
		apperr.ErrInvalidInput, op, spec, strings.Join(scan.Operations(), ", "))
}

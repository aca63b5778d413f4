package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbckr/webprobe/internal/scan"
)

func newDomainCmd(d *deps) *cobra.Command {
	return newLookupCmd(d, scan.OpDomain,
		"Look up domain-parsing data for one or more targets",
		`Query the API's domain endpoint: registrable domain, public suffix, and
related parsing data for a hostname or URL. The JSON response is printed
unmodified.`,
		`  # Single lookup
  webprobe domain example.com

  # Bulk input from stdin, dispatched concurrently
  cat targets.txt | webprobe domain

  # Line-oriented output for piping
  webprobe domain --output plain example.com | jq .registrable_domain`)
}

func newHTTPCmd(d *deps) *cobra.Command {
	return newLookupCmd(d, scan.OpHTTP,
		"Look up HTTP version support for one or more targets",
		`Query the API's http endpoint: which HTTP protocol versions the target
speaks. The JSON response is printed unmodified.`,
		`  # Single lookup
  webprobe http https://example.com

  # Bulk input
  echo -e "example.com\nexample.org" | webprobe http`)
}

func newTLSCmd(d *deps) *cobra.Command {
	return newLookupCmd(d, scan.OpTLS,
		"Look up the TLS configuration of one or more targets",
		`Query the API's tls endpoint: protocol versions, cipher configuration, and
certificate data for the target. The JSON response is printed unmodified.`,
		`  # Single lookup
  webprobe tls example.com

  # Against a locally running API
  webprobe tls --local example.com`)
}

// newLookupCmd builds one single-operation command. A single target is looked
// up synchronously; multiple targets (args or stdin lines) go through the
// concurrent batch path and keep their input order in the output.
func newLookupCmd(d *deps, op, short, long, example string) *cobra.Command {
	long += `

Failed lookups are reported in-band: the document for a failed target contains
an "error" key instead of data. Multiple targets can be supplied as arguments
or piped via stdin (one per line); they are dispatched concurrently (see
--concurrency).`

	return &cobra.Command{
		Use:     op + " [target...]",
		Short:   short,
		Long:    long,
		Example: example,
		GroupID: "lookup",
		Args:    cobra.ArbitraryArgs,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := resolveInputs(cmd, args)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no input: supply a target as argument or pipe via stdin")
			}

			client := d.newScanClient()

			if len(inputs) == 1 {
				doc, err := client.Lookup(cmd.Context(), op, inputs[0])
				if err != nil {
					return err
				}
				return writeResult(cmd.OutOrStdout(), d, doc)
			}

			reqs := make([]scan.Request, len(inputs))
			for i, target := range inputs {
				reqs[i] = scan.Request{Operation: op, Target: target}
			}
			docs := client.Batch(cmd.Context(), reqs)
			return writeResult(cmd.OutOrStdout(), d, docs...)
		},
	}
}

// Package cli provides the Cobra command tree and output wiring for webprobe.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tbckr/webprobe/internal/config"
	"github.com/tbckr/webprobe/internal/output"
	"github.com/tbckr/webprobe/internal/scan"
	"github.com/tbckr/webprobe/internal/version"
	"github.com/tbckr/webprobe/internal/worker"
)

// newRootCmd builds the top-level Cobra command for webprobe.
// Callers must set stdout/stderr via cmd.SetOut / cmd.SetErr before Execute.
func newRootCmd() *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// INVARIANT: Cobra only executes the innermost PersistentPreRunE in the
	// command chain. If a future subcommand defines its own PersistentPreRunE,
	// the root hook will NOT run and d will be zero-valued. Do not add
	// PersistentPreRunE to any subcommand without also re-calling buildDeps.
	var d deps

	cmd := &cobra.Command{
		Use:   "webprobe",
		Short: "webprobe — lookup client for the webprobe scanning API",
		Long: `webprobe queries the hosted webprobe scanning API for domain parsing,
HTTP version support, and TLS configuration data.

Each lookup is a single GET against the API; the JSON response is passed
through unmodified. Failed lookups carry an "error" key instead of data, so
batch output always lines up one-to-one with its input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := buildDeps(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d = *resolved
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	config.RegisterFlagCompletions(cmd)

	cmd.Version = version.Get().Version
	cmd.SetVersionTemplate("webprobe version {{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: "lookup", Title: "Lookup Commands:"},
		&cobra.Group{ID: "utility", Title: "Utility Commands:"},
	)

	cmd.AddCommand(
		newDomainCmd(&d),
		newHTTPCmd(&d),
		newTLSCmd(&d),
		newScanCmd(&d),
		newVersionCmd(&d),
		newCompletionCmd(),
	)

	cmd.MarkFlagsMutuallyExclusive("base-url", "local")

	return cmd
}

// ExecuteContext builds the root command and runs it with os.Args under ctx.
func ExecuteContext(ctx context.Context, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
}

// buildDeps resolves config and logger and validates cross-flag constraints.
func buildDeps(cmd *cobra.Command, stderr io.Writer) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("--concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("--timeout must not be negative, got %d", cfg.TimeoutSeconds)
	}

	if !output.Format(cfg.Output).Valid() {
		return nil, fmt.Errorf("invalid output format %q: must be \"json\" or \"plain\"", cfg.Output)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return &deps{cfg: cfg, logger: logger}, nil
}

// resolveBaseAddress maps the config onto a concrete API base address:
// an explicit --base-url wins, then the --local preset, then production.
func resolveBaseAddress(cfg *config.Config) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	if cfg.Local {
		return scan.LocalBaseURL
	}
	return scan.DefaultBaseURL
}

// newScanClient creates the API client for the resolved config.
func (d *deps) newScanClient() *scan.Client {
	return scan.NewClient(
		scan.WithBaseAddress(resolveBaseAddress(d.cfg)),
		scan.WithTimeout(time.Duration(d.cfg.TimeoutSeconds)*time.Second),
		scan.WithUserAgent(d.cfg.UserAgent),
		scan.WithConcurrency(d.cfg.Concurrency),
		scan.WithLogger(d.logger),
		scan.WithDebug(d.cfg.Verbose),
	)
}

// resolveInputs returns positional args, or reads non-empty lines from stdin when
// no args are provided. Returns an error if stdin is an interactive terminal with
// no args (i.e. the user forgot to pass an argument or pipe input).
func resolveInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	r := cmd.InOrStdin()
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // uintptr→int is safe for file descriptors; they fit in int on all supported platforms
		return nil, fmt.Errorf("no input: pass an argument or pipe stdin")
	}
	return worker.ReadTargets(r)
}

// writeResult formats and writes lookup documents to w.
func writeResult(w io.Writer, d *deps, docs ...scan.Document) error {
	if err := output.Write(w, output.Format(d.cfg.Output), docs...); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/tbckr/webprobe/internal/cli"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	// Ctrl-C cancels the context; in-flight lookups fail fast and settle.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	return cli.ExecuteContext(ctx, stdout, stderr)
}

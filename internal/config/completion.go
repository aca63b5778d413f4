package config

import "github.com/spf13/cobra"

// CompleteOutputFormat provides shell completion candidates for the --output flag.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"json", "plain"}, cobra.ShellCompDirectiveNoFileComp
}

// RegisterFlagCompletions attaches completion functions to the flags that
// have a fixed candidate set.
func RegisterFlagCompletions(cmd *cobra.Command) {
	// Registration only fails for unknown flag names, which would be a
	// programming error caught by the completion tests.
	_ = cmd.RegisterFlagCompletionFunc("output", CompleteOutputFormat)
}

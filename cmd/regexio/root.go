package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "regexio",
	Short: "Build regular expression patterns from composable operations",
	Long: `regexio builds regular expression pattern strings from composable ` +
		`operations. The demo subcommand builds a showcase pattern with the ` +
		`fluent API and matches it against sample inputs; generate writes a Go ` +
		`source file that embeds the showcase patterns as compiled variables.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

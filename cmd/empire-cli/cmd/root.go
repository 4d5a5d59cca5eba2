package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "empire-cli",
	Short: "Empire OS CLI tool",
	Long: `Empire OS CLI is a command-line interface for the Empire OS front-end.

Available commands:
  render     Render the introduction page to a static HTML file
  routes     List the routes the introduction page links to
  version    Print the CLI version

Use "empire-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package cli wires the cobra commands: watch (the dashboard), init
// (config scaffolding), and version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "boardwatch",
	Short: "Live terminal dashboard for multi-agent board meetings",
	Long: `boardwatch polls a board meeting service over HTTP and renders live
per-member telemetry: a scrolling vital-sign trace driven by token usage,
health and contribution counts, recent thoughts, and a transition log of
stage and speaker changes.

Run 'boardwatch init' once to create a config file, then 'boardwatch watch'
to open the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Tipsplit is a tip calculator that splits a bill between people.
//
// It offers an interactive terminal form, a browser form served over HTTP
// and WebSocket, and a one-shot calc command for scripts.
//
// Usage:
//
//	tipsplit [command] [flags]
//
// Running without arguments launches the terminal form.
// See 'tipsplit --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/tipsplit/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tipsplit",
	Short: "Tip calculator and bill splitter",
	Long: `Work out the tip and total each person pays.

Enter the bill, pick a tip percentage (5, 10, 15, 25, 50 or a custom value)
and the number of people. Results are rounded to the cent.

If no command is specified, the terminal form launches automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the form when no subcommand provided
		return runForm(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tipsplit %s\n", version.Full())
	},
}

// Package main provides the entry point for the huescan CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huescan-dev/huescan/cmd/huescan/commands"
	"github.com/huescan-dev/huescan/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "huescan",
		Short: "Huescan - color usage inventory for web codebases",
		Long: `Huescan walks a file's explicit import closure and inventories every
color it finds: custom-property definitions and references, and literal
hex/rgb()/hsl() tokens, each with its position, selector or component
context, and dark/light theme tag.

Commands:
  scan      Scan a root file and print the color inventory
  mcp       Start the MCP stdio server`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "huescan %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/huescan-dev/huescan/internal/mcp"
	"github.com/huescan-dev/huescan/internal/observability"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes the color scanner as a tool that AI agents can
discover and invoke:
  - huescan_scan: scan a file and its import closure for color usage`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			providers, err := initObservability(observability.ModeMCP, debug)
			if err != nil {
				return err
			}

			defer func() {
				shutdownErr := providers.Shutdown(context.Background())
				if shutdownErr != nil {
					providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
				}
			}()

			srv := mcp.NewServer(mcp.ServerDeps{
				Logger: providers.Logger,
				Tracer: providers.Tracer,
			})

			return srv.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/lakedocs/lakedocs/adapters/mcpserver"
	"github.com/lakedocs/lakedocs/internal/logging"
)

// newCmdMCP returns the command that serves the MCP tool surface over
// stdio until the client disconnects.
func newCmdMCP() *cobra.Command {
	return &cobra.Command{
		Use:           "mcp",
		Short:         "Serve Fabric schema tools over MCP stdio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			logging.FromContext(ctx).Info(ctx, "serving MCP over stdio")
			return mcpserver.New(d.Catalog, d.Schemas, version).Run(ctx)
		},
	}
}

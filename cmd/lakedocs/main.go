package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	_ "github.com/lakedocs/lakedocs/adapters/drivers/table/deltago"
	"github.com/lakedocs/lakedocs/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lakedocs",
		Short:   "Fabric lakehouse Delta schema documentation",
		Long:    "Extract Delta table schemas from Fabric lakehouses and render them as markdown, or serve them as MCP tools.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-format", "text", "Log format (text|json) (env LAKEDOCS_LOG_FORMAT)")
	cmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	cmd.PersistentFlags().String("config", "", "Path to lakedocs.yml (optional)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		// The env var supplies the default; an explicit flag wins.
		if f := findFlag(c, "log-format"); f != nil && !f.Changed {
			if env := os.Getenv("LAKEDOCS_LOG_FORMAT"); env != "" {
				format = env
			}
		}
		verbose, _ := c.Flags().GetCount("verbose")
		l, err := logging.New(format, logging.LevelForVerbosity(verbose), os.Stderr)
		if err != nil {
			return err
		}
		c.SetContext(logging.WithLogger(c.Context(), l))
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdExtract())
	cmd.AddCommand(newCmdMCP())
	return cmd
}

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}

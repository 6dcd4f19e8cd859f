package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lakedocs/lakedocs/domain/model"
	"github.com/lakedocs/lakedocs/internal/logging"
	"github.com/lakedocs/lakedocs/internal/markdown"
	"github.com/lakedocs/lakedocs/internal/naming"
	"github.com/lakedocs/lakedocs/usecase/schema"
)

// newCmdExtract returns the batch command: resolve a workspace, walk its
// lakehouses, and write one markdown schema document per lakehouse.
func newCmdExtract() *cobra.Command {
	var (
		workspace  string
		lakehouses []string
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:           "extract",
		Short:         "Extract Delta table schemas into markdown files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "extract", workspace)
			defer func() { cleanup(err) }()
			logger := logging.FromContext(ctx)

			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}

			// Fail fast on authentication problems before any listing.
			logger.Debug(ctx, "verifying Azure credential")
			if err = d.Holder.Verify(ctx); err != nil {
				return fmt.Errorf("failed to authenticate with Azure: %w", err)
			}

			logger.Info(ctx, "resolving workspace identifier")
			workspaceID, err := d.Client.ResolveWorkspace(ctx, workspace)
			if err != nil {
				return err
			}
			logger.Debug(ctx, "resolved workspace", "ref", workspace, "id", workspaceID)

			logger.Info(ctx, "retrieving lakehouses from workspace")
			all, err := d.Client.ListLakehouses(ctx, workspaceID)
			if err != nil {
				return err
			}

			targets := all
			if len(lakehouses) > 0 {
				targets = filterLakehouses(all, lakehouses)
				if len(targets) == 0 {
					return fmt.Errorf("%w: none of the specified lakehouses exist in workspace %s",
						model.ErrLakehouseNotFound, workspace)
				}
			}
			logger.Info(ctx, "processing lakehouses", "count", len(targets))

			if err = os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output directory %s: %w", outputDir, err)
			}

			for _, lh := range targets {
				logger.Info(ctx, "processing lakehouse", "lakehouse", lh.DisplayName)
				tables, err := d.Client.ListTables(ctx, workspaceID, lh.ID)
				if err != nil {
					return err
				}
				if len(tables) == 0 {
					logger.Warn(ctx, "no tables found in lakehouse", "lakehouse", lh.DisplayName)
					continue
				}

				out, err := d.Schemas.Extract(ctx, &schema.ExtractInput{Tables: tables})
				if err != nil {
					return err
				}
				logger.Info(ctx, "processed delta tables", "lakehouse", lh.DisplayName, "count", len(out.Schemas))

				now := time.Now()
				doc := markdown.Document(workspace, lh.DisplayName, now, out.Schemas)
				path := filepath.Join(outputDir, naming.OutputFileName(workspace, lh.DisplayName, now))
				if err = os.WriteFile(path, []byte(doc), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				logger.Info(ctx, "schema documentation written", "lakehouse", lh.DisplayName, "path", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace name or ID (required)")
	cmd.Flags().StringSliceVarP(&lakehouses, "lakehouses", "l", nil, "Lakehouse names or IDs to process (default: all)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Output directory for markdown files")
	_ = cmd.MarkFlagRequired("workspace")
	return cmd
}

// filterLakehouses keeps lakehouses whose ID or display name matches any
// requested reference, case-insensitively.
func filterLakehouses(all []model.Lakehouse, refs []string) []model.Lakehouse {
	wanted := make(map[string]bool, len(refs))
	for _, r := range refs {
		wanted[strings.ToLower(r)] = true
	}
	var out []model.Lakehouse
	for _, lh := range all {
		if wanted[strings.ToLower(lh.ID)] || wanted[strings.ToLower(lh.DisplayName)] {
			out = append(out, lh)
		}
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/codetidy/decomment/pkg/scan"
)

func statsCmd(a *app) *cobra.Command {
	var ignore []string
	cmd := &cobra.Command{
		Use:   "stats [path]",
		Short: "Count comments in a directory tree without modifying anything",
		Args:  cobra.RangeArgs(0, 1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runStats(cmd.Context(), a, path, ignore, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringSliceVar(&ignore, "ignore", []string{},
		"Directory names to ignore, adding to defaults.")
	return cmd
}

func runStats(ctx context.Context, a *app, path string, ignore []string, stdout, stderr io.Writer) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := scan.Tree(ctx, os.DirFS(absPath), a.ruleset, scan.Config{IgnoreDirs: ignore})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(stats) == 0 {
		fmt.Fprintln(stderr, "No recognized source files found.")
		return nil
	}

	fmt.Fprintf(stderr, "Scanned in %s:\n", time.Since(start))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(stdout)
	tbl.SetAllowedRowLength(getTerminalWidth())
	tbl.AppendHeader(table.Row{"Language", "Files", "Comments"})

	var totalFiles, totalComments int
	for _, st := range stats {
		tbl.AppendRow(table.Row{st.Language, st.Files, st.Comments})
		totalFiles += st.Files
		totalComments += st.Comments
	}
	tbl.AppendFooter(table.Row{"Total", totalFiles, totalComments})
	tbl.Render()
	return nil
}

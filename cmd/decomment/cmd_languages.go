package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/IGLOU-EU/go-wildcard/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/codetidy/decomment/pkg/rules"
)

func languagesCmd(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:           "languages",
		Short:         "List configured languages and their comment rules",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLanguages(a, filter, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "",
		"Filter languages matching the wildcard pattern(s), separated by commas.")
	return cmd
}

func runLanguages(a *app, filter string, stdout io.Writer) error {
	langs := a.ruleset.Languages()
	if filter != "" {
		patterns := strings.Split(filter, ",")
		var filtered = make([]*rules.Language, 0, len(langs))
		for _, lang := range langs {
			for _, p := range patterns {
				p = strings.TrimSpace(p)
				if wildcard.Match(p, lang.Key) || wildcard.Match(p, lang.Name) {
					filtered = append(filtered, lang)
					break
				}
			}
		}
		langs = filtered
	}
	if len(langs) == 0 {
		return fmt.Errorf("no languages found")
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(stdout)
	tbl.AppendHeader(table.Row{"Key", "Name", "Extensions", "Single-line", "Multi-line"})
	for _, lang := range langs {
		var single []string
		for _, r := range lang.SingleLine {
			single = append(single, r.Pattern)
		}
		var multi []string
		for _, r := range lang.MultiLine {
			multi = append(multi, r.Start+" "+r.End)
		}
		tbl.AppendRow(table.Row{
			lang.Key,
			lang.Name,
			strings.Join(lang.Extensions, ", "),
			strings.Join(single, ", "),
			strings.Join(multi, ", "),
		})
	}
	tbl.Render()
	return nil
}

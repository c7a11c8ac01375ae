package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:           "info",
		Short:         "Display detailed information about the tool",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printInfo(a, cmd.OutOrStdout())
			return nil
		},
	}
}

func printInfo(a *app, w io.Writer) {
	bold := color.New(color.Bold)

	fmt.Fprintf(w, "\n%s\n", color.New(color.Bold, color.FgGreen).Sprint("decomment"))
	fmt.Fprintln(w, "A tool to remove comments from source code files")
	fmt.Fprintln(w, "Will only remove non-inline comments")
	fmt.Fprintln(w)

	fmt.Fprintln(w, bold.Sprint("USAGE:"))
	fmt.Fprintln(w, "  decomment [COMMAND] [OPTIONS]")
	fmt.Fprintln(w)

	fmt.Fprintln(w, bold.Sprint("COMMANDS:"))
	fmt.Fprintln(w, "  remove <file>    Remove comments from a source file")
	fmt.Fprintln(w, "  stats [path]     Count comments in a directory tree")
	fmt.Fprintln(w, "  languages        List configured languages")
	fmt.Fprintln(w, "  info             Display detailed information about the tool")
	fmt.Fprintln(w)

	fmt.Fprintln(w, bold.Sprint("OPTIONS:"))
	fmt.Fprintln(w, "  -a, --auto       Remove all comments without asking for confirmation")
	fmt.Fprintln(w, "  -f, --force      Skip creating a backup file before modifications")
	fmt.Fprintln(w, "  -v, --verbose    Give detailed information while executing")
	fmt.Fprintln(w, "      --rules      Use a custom rule file or directory")
	fmt.Fprintln(w)

	fmt.Fprintln(w, bold.Sprint("EXAMPLES:"))
	fmt.Fprintln(w, "  decomment remove main.rs")
	fmt.Fprintln(w, "  decomment remove --auto main.rs")
	fmt.Fprintln(w, "  decomment remove --force main.rs")
	fmt.Fprintln(w, "  decomment remove --auto --force main.rs")
	fmt.Fprintln(w)

	fmt.Fprintln(w, bold.Sprint("SUPPORTED LANGUAGES:"))
	for _, lang := range a.ruleset.Languages() {
		exts := make([]string, len(lang.Extensions))
		for i, ext := range lang.Extensions {
			exts[i] = "." + ext
		}
		fmt.Fprintf(w, "  • %s (%s)\n", lang.Name, strings.Join(exts, ", "))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, bold.Sprint("NOTES:"))
	fmt.Fprintln(w, "  • By default, the tool runs in interactive mode")
	fmt.Fprintln(w, "  • A backup file (.bak) is created unless --force is used")
	fmt.Fprintln(w, "  • Comments are detected based on language-specific syntax")
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codetidy/decomment/pkg/files"
	"github.com/codetidy/decomment/pkg/strip"
)

func removeCmd(a *app) *cobra.Command {
	var auto, force, verbose bool
	cmd := &cobra.Command{
		Use:           "remove <file>",
		Short:         "Remove comments from a source file",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(a, args[0], auto, force, verbose,
				cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVarP(&auto, "auto", "a", false,
		"Remove all comments without asking for confirmation.")
	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Skip creating a backup file before modifications.")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Show detailed information while running.")
	return cmd
}

func runRemove(a *app, path string, auto, force, verbose bool, stdin io.Reader, stdout, stderr io.Writer) error {
	content, err := files.Read(path)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(stderr, "File content length: %d bytes\n", len(content))
	}

	lang, err := a.ruleset.DetectLanguage(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Detected language: %s\n", color.GreenString("%s", lang.Name))

	var confirmer strip.Confirmer = strip.AutoConfirmer{}
	if !auto {
		if !isTerminal(stdin) {
			return errors.New("interactive confirmation requires a terminal; use --auto")
		}
		confirmer = strip.NewTerminalConfirmer(stdin, stdout)
	}

	opts := strip.Options{Verbose: verbose, Out: stderr}
	patterns := strip.Compile(lang, opts)
	result := strip.Remove(content, patterns, confirmer, opts)

	if result.Content == content {
		fmt.Fprintf(stdout, "No comments were removed from: %s\n", color.YellowString("%s", path))
		if verbose && result.Found == 0 {
			fmt.Fprintln(stderr, "  - No comments were found in the file")
		}
		return nil
	}

	backup := !force && a.settings.Backups
	if err := files.WriteWithBackup(path, content, result.Content, backup); err != nil {
		return err
	}
	if backup {
		fmt.Fprintf(stdout, "Created backup file: %s\n", color.BlueString("%s", files.BackupPath(path)))
	}
	fmt.Fprintf(stdout, "Successfully removed comments from: %s\n", color.GreenString("%s", path))
	if verbose {
		fmt.Fprintln(stderr, "Statistics:")
		fmt.Fprintf(stderr, "  - Total comments found: %d\n", result.Found)
		fmt.Fprintf(stderr, "  - Comments removed: %d\n", result.Removed)
		fmt.Fprintf(stderr, "  - Comments preserved: %d\n", result.Preserved())
	}
	return nil
}

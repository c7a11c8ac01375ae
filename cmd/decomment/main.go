package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codetidy/decomment"
	"github.com/codetidy/decomment/internal/config"
	"github.com/codetidy/decomment/pkg/rules"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app holds state shared between subcommands, populated before any of them
// runs.
type app struct {
	settings *config.Settings
	ruleset  *rules.RuleSet
}

func rootCmd() *cobra.Command {
	var cfgFile string
	var rulesPath string
	var noColor bool
	a := &app{}

	cmd := &cobra.Command{
		Use:   "decomment",
		Short: "Remove comments from source code files",
		Long: "decomment strips comments from source files based on per-language\n" +
			"syntax rules, either interactively or automatically.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			settings, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if noColor || settings.NoColor {
				color.NoColor = true
			}
			if rulesPath == "" {
				rulesPath = settings.RulesPath
			}
			ruleset, err := loadRuleset(rulesPath)
			if err != nil {
				return err
			}
			a.settings = settings
			a.ruleset = ruleset
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a config file.")
	cmd.PersistentFlags().StringVar(&rulesPath, "rules", "",
		"Path to a custom rule file or directory (replacing the embedded defaults).")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output.")

	cmd.AddCommand(removeCmd(a), statsCmd(a), languagesCmd(a), infoCmd(a))
	return cmd
}

// loadRuleset loads rules from a custom file or directory, falling back to
// the embedded defaults.
func loadRuleset(path string) (*rules.RuleSet, error) {
	if path == "" {
		return decomment.LoadDefaultRules()
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules from %s: %w", path, err)
	}
	if fi.IsDir() {
		return rules.LoadDir(os.DirFS(path), ".")
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return rules.LoadFile(os.DirFS(dir), name)
}

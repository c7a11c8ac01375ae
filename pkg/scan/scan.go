// Package scan provides a read-only comment census over a directory tree.
// It reuses the same compiled patterns as removal, but never mutates files.
package scan

import (
	"context"
	"errors"
	"io/fs"
	"runtime"
	"slices"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/codetidy/decomment/pkg/rules"
	"github.com/codetidy/decomment/pkg/strip"
)

// LanguageStats aggregates comment counts for one language.
type LanguageStats struct {
	Language string
	Files    int
	Comments int
}

// Config controls a tree scan.
type Config struct {
	IgnoreDirs []string // Directory names to skip, adding to defaults.
}

var defaultIgnoreDirs = []string{
	".git", ".idea", ".vscode", "node_modules", "vendor", "dist", "build",
}

// decline rejects every match, so Remove only counts.
var decline = strip.ConfirmerFunc(func(string) bool { return false })

// Tree walks fsys, detects each file's language, and counts comment matches
// per language. Files are processed concurrently, bounded by GOMAXPROCS;
// the returned stats are sorted by language name.
func Tree(ctx context.Context, fsys fs.FS, ruleset *rules.RuleSet, cnf Config) ([]LanguageStats, error) {
	ignore := append(slices.Clone(defaultIgnoreDirs), cnf.IgnoreDirs...)

	compiled := make(map[string][]strip.Pattern, len(ruleset.Languages()))
	for _, lang := range ruleset.Languages() {
		compiled[lang.Key] = strip.Compile(lang, strip.Options{})
	}

	var mu sync.Mutex
	byLang := make(map[string]*LanguageStats)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	walkErr := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && slices.Contains(ignore, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		lang, err := ruleset.DetectLanguage(path)
		if err != nil {
			var unsupported *rules.UnsupportedFileTypeError
			if errors.As(err, &unsupported) {
				return nil
			}
			return err
		}

		patterns := compiled[lang.Key]
		eg.Go(func() error {
			raw, err := fs.ReadFile(fsys, path)
			if err != nil {
				return err
			}
			result := strip.Remove(string(raw), patterns, decline, strip.Options{})

			mu.Lock()
			st := byLang[lang.Key]
			if st == nil {
				st = &LanguageStats{Language: lang.Name}
				byLang[lang.Key] = st
			}
			st.Files++
			st.Comments += result.Found
			mu.Unlock()
			return nil
		})
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if walkErr != nil {
		return nil, walkErr
	}

	stats := make([]LanguageStats, 0, len(byLang))
	for _, st := range byLang {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Language < stats[j].Language
	})
	return stats, nil
}

// Package strip implements comment detection and removal over file content.
// Rules are compiled into regular expressions and applied in order against a
// mutable working copy, with a pluggable confirmation policy per match.
package strip

import (
	"fmt"
	"io"
	"regexp"

	"github.com/codetidy/decomment/pkg/rules"
)

// Pattern is the compiled matcher for one comment rule.
type Pattern struct {
	Description string

	re *regexp.Regexp

	// lineAnchored is true for single-line rules, whose matches may only
	// begin at a line boundary.
	lineAnchored bool
}

// Expr returns the derived regular expression text.
func (p Pattern) Expr() string {
	return p.re.String()
}

// Options control diagnostics during compilation and scanning.
type Options struct {
	Verbose bool
	Out     io.Writer // Diagnostic destination, defaulting to io.Discard.
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return io.Discard
	}
	return o.Out
}

// Compile turns a language's comment rules into an ordered pattern sequence:
// single-line rules first, then multi-line rules, each in declared order.
// Rule tokens are escaped, so pattern metacharacters in a token ("*", "+")
// match literally.
func Compile(lang *rules.Language, opts Options) []Pattern {
	out := opts.out()
	if opts.Verbose {
		fmt.Fprintf(out, "Detecting patterns for language: %s\n", lang.Name)
	}

	patterns := make([]Pattern, 0, len(lang.SingleLine)+len(lang.MultiLine))
	for _, rule := range lang.SingleLine {
		expr := fmt.Sprintf(`(?m)^\s*%s\s*.*$`, regexp.QuoteMeta(rule.Pattern))
		patterns = append(patterns, Pattern{
			Description:  rule.Description,
			re:           regexp.MustCompile(expr),
			lineAnchored: true,
		})
		if opts.Verbose {
			fmt.Fprintf(out, "Added pattern for %s: %s\n", rule.Description, expr)
		}
	}
	for _, rule := range lang.MultiLine {
		// Lazy body, so adjacent comments each close at their nearest end
		// token instead of merging into one span.
		expr := fmt.Sprintf(`%s\s*[\s\S]*?\s*%s`, regexp.QuoteMeta(rule.Start), regexp.QuoteMeta(rule.End))
		patterns = append(patterns, Pattern{
			Description: rule.Description,
			re:          regexp.MustCompile(expr),
		})
		if opts.Verbose {
			fmt.Fprintf(out, "Added pattern for %s: %s\n", rule.Description, expr)
		}
	}
	return patterns
}
